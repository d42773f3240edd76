package finance

import "slb-charger-econ/internal/maybe"

// PaybackYear is the first year whose running sum of nominal cash flows,
// starting at year 0, is non-negative.
func PaybackYear(cashflows []float64) maybe.Maybe[int] {
	cum := 0.0
	for y, cf := range cashflows {
		cum += cf
		if cum >= 0 {
			return maybe.Some(y)
		}
	}
	return maybe.None[int]()
}
