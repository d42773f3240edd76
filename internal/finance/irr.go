package finance

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"slb-charger-econ/internal/maybe"
)

const (
	newtonMaxIter = 100
	newtonTol     = 1e-12
	newtonGuess   = 0.1
	imagTol       = 1e-9
	eigenRootTol  = 1e-6
)

// IRR returns the rate at which the NPV of cashflows is zero.
//
// With x = 1/(1+r) the NPV is the polynomial sum(cf[y] * x^y); its real
// positive roots are found from the eigenvalues of the companion matrix and
// polished with Newton steps. When several rates qualify the one closest to
// zero wins. A root the Newton steps cannot refine is kept as found. The
// result is None when the series has no sign change or the polynomial has no
// real positive root.
func IRR(cashflows []float64) maybe.Maybe[float64] {
	if !hasSignChange(cashflows) {
		return maybe.None[float64]()
	}

	candidates, ok := polynomialRates(cashflows)
	if !ok {
		if r, converged := newton(cashflows, newtonGuess); converged {
			return maybe.Some(r)
		}
		return maybe.None[float64]()
	}

	best := math.NaN()
	for _, r := range candidates {
		polished, converged := newton(cashflows, r)
		if !converged {
			if !isRoot(cashflows, r, eigenRootTol) {
				continue
			}
			polished = r
		}
		if math.IsNaN(best) || math.Abs(polished) < math.Abs(best) {
			best = polished
		}
	}
	if math.IsNaN(best) {
		return maybe.None[float64]()
	}
	return maybe.Some(best)
}

func hasSignChange(cashflows []float64) bool {
	var pos, neg bool
	for _, cf := range cashflows {
		switch {
		case cf > 0:
			pos = true
		case cf < 0:
			neg = true
		}
	}
	return pos && neg
}

// polynomialRates returns candidate rates from the real positive roots of the
// NPV polynomial. ok is false when the eigen decomposition fails.
func polynomialRates(cashflows []float64) ([]float64, bool) {
	// Zero low-order terms only contribute roots at x = 0, zero high-order
	// terms lower the degree.
	lo, hi := 0, len(cashflows)-1
	for lo <= hi && cashflows[lo] == 0 {
		lo++
	}
	for hi >= lo && cashflows[hi] == 0 {
		hi--
	}
	coef := cashflows[lo : hi+1]
	n := len(coef) - 1
	if n < 1 {
		return nil, true
	}

	var roots []complex128
	if n == 1 {
		roots = []complex128{complex(-coef[0]/coef[1], 0)}
	} else {
		// Companion matrix of the monic polynomial x^n + a[n-1] x^(n-1) + ... + a[0].
		c := mat.NewDense(n, n, nil)
		for i := 1; i < n; i++ {
			c.Set(i, i-1, 1)
		}
		for i := 0; i < n; i++ {
			c.Set(i, n-1, -coef[i]/coef[n])
		}
		var eig mat.Eigen
		if ok := eig.Factorize(c, mat.EigenNone); !ok {
			return nil, false
		}
		roots = eig.Values(nil)
	}

	rates := make([]float64, 0, len(roots))
	for _, x := range roots {
		re, im := real(x), imag(x)
		if math.Abs(im) > imagTol*math.Max(1, math.Abs(re)) || re <= 0 {
			continue
		}
		rates = append(rates, 1/re-1)
	}
	return rates, true
}

// npvScale is the sum of the magnitudes of the discounted terms at rate.
// Residuals are judged against it; for rates near -1 the terms grow far
// beyond the undiscounted cash flows.
func npvScale(rate float64, cashflows []float64) float64 {
	s := 0.0
	for y, cf := range cashflows {
		s += math.Abs(cf) / math.Pow(1+rate, float64(y))
	}
	return s
}

// isRoot reports whether NPV at rate is zero relative to the size of its terms.
func isRoot(cashflows []float64, rate, tol float64) bool {
	if rate <= -1 {
		return false
	}
	scale := npvScale(rate, cashflows)
	if scale == 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		return false
	}
	return math.Abs(NPV(rate, cashflows)) <= tol*scale
}

// newton refines rate until NPV is zero. It gives up when the derivative
// vanishes, the iterate leaves the domain r > -1, or it runs out of steps.
func newton(cashflows []float64, rate float64) (float64, bool) {
	if npvScale(0, cashflows) == 0 {
		return 0, false
	}

	r := rate
	for i := 0; i < newtonMaxIter; i++ {
		if isRoot(cashflows, r, newtonTol) {
			return r, true
		}
		f := NPV(r, cashflows)
		df := npvDerivative(r, cashflows)
		if df == 0 || math.IsNaN(df) || math.IsInf(df, 0) {
			return 0, false
		}
		next := r - f/df
		if next <= -1 || math.IsNaN(next) || math.IsInf(next, 0) {
			return 0, false
		}
		if math.Abs(next-r) <= newtonTol*math.Max(1, math.Abs(r)) {
			return next, isRoot(cashflows, next, 1e-9)
		}
		r = next
	}
	return 0, false
}
