package finance

import "slb-charger-econ/internal/maybe"

// CrossoverYear is the first year at which a's cumulative series strictly
// exceeds b's. Only the years both series cover are compared.
func CrossoverYear(a, b []float64) maybe.Maybe[int] {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for y := 0; y < n; y++ {
		if a[y] > b[y] {
			return maybe.Some(y)
		}
	}
	return maybe.None[int]()
}
