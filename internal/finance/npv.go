package finance

import "math"

// NPV discounts cashflows[y] by (1+rate)^y, y starting at 0, and sums them.
func NPV(rate float64, cashflows []float64) float64 {
	npv := 0.0
	for y, cf := range cashflows {
		npv += cf / math.Pow(1+rate, float64(y))
	}
	return npv
}

// npvDerivative is d(NPV)/d(rate).
func npvDerivative(rate float64, cashflows []float64) float64 {
	d := 0.0
	for y, cf := range cashflows {
		if y == 0 {
			continue
		}
		d -= float64(y) * cf / math.Pow(1+rate, float64(y+1))
	}
	return d
}
