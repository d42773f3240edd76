package report

import (
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"slb-charger-econ/internal/maybe"
)

const (
	NotAvailable = "N/A"
	NotReached   = "Not reached within analysis horizon"
)

// Fixed2 renders x with exactly 2 decimals, half away from zero.
func Fixed2(x float64) string {
	return decimal.NewFromFloat(x).StringFixed(2)
}

// Currency renders x as dollars with thousands separators, e.g. $-1,234.50.
func Currency(x float64) string {
	rounded, _ := decimal.NewFromFloat(x).Round(2).Float64()
	return "$" + humanize.FormatFloat("#,###.##", rounded)
}

// Percent renders a fractional rate as a percentage with 2 decimals.
func Percent(rate maybe.Maybe[float64]) string {
	if !rate.IsValid() {
		return NotAvailable
	}
	return decimal.NewFromFloat(rate.Value()).Shift(2).StringFixed(2) + "%"
}

// Years renders a year index, or N/A when it was never reached.
func Years(y maybe.Maybe[int]) string {
	if !y.IsValid() {
		return NotAvailable
	}
	return strconv.Itoa(y.Value()) + " years"
}

func Crossover(y maybe.Maybe[int]) string {
	if !y.IsValid() {
		return NotReached
	}
	return strconv.Itoa(y.Value()) + " years"
}
