package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slb-charger-econ/internal/finance"
	"slb-charger-econ/internal/model"
)

// highUsage pays back within the horizon and crosses over in year 4.
func highUsage() model.Params {
	p := model.DefaultParams()
	p.ElectricityPricePerKWh = 0.5
	p.EVChargingSessionsPerMonth = 20
	return p
}

func TestCompareDefaultExample(t *testing.T) {
	res := Compare(model.DefaultParams(), model.DefaultOptions())

	assert.InDelta(t, 320.0, res.Demand.MonthlyConsumptionKWh, 1e-9)
	assert.InDelta(t, 3840.0, res.Demand.AnnualEnergyKWh, 1e-9)
	assert.InDelta(t, -25000.0, res.SLB.Series.Rows[0].CumDiscounted, 1e-9)
	assert.Zero(t, res.Grid.Series.Rows[0].CumDiscounted)
	assert.InDelta(t, -960.0, res.Grid.Series.Rows[1].Nominal, 1e-9)

	require.True(t, res.HasMetrics)

	slb := res.SLB.Metrics
	require.True(t, slb.IRR.IsValid())
	assert.InDelta(t, -0.0444, slb.IRR.Value(), 1e-4)
	assert.InDelta(t, -17182.65, slb.NPV, 0.01)
	assert.False(t, slb.PaybackYear.IsValid())

	grid := res.Grid.Metrics
	assert.False(t, grid.IRR.IsValid(), "grid-only series has no sign change")
	assert.InDelta(t, -9770.18, grid.NPV, 0.01)
	// year 0 is exactly zero, so the running sum is already non-negative
	require.True(t, grid.PaybackYear.IsValid())
	assert.Equal(t, 0, grid.PaybackYear.Value())

	assert.False(t, res.CrossoverYear.IsValid())
}

func TestCompareNPVMatchesFinalCumulativeDiscounted(t *testing.T) {
	res := Compare(highUsage(), model.DefaultOptions())

	cum := res.SLB.Series.CumulativeDiscounted()
	assert.InDelta(t, cum[len(cum)-1], res.SLB.Metrics.NPV, 1e-6)
	assert.InDelta(t, 13666.70, res.SLB.Metrics.NPV, 0.01)
}

func TestCompareCrossoverOrdering(t *testing.T) {
	res := Compare(highUsage(), model.DefaultOptions())

	require.True(t, res.CrossoverYear.IsValid())
	c := res.CrossoverYear.Value()
	assert.Equal(t, 4, c)

	slb := res.SLB.Series.CumulativeDiscounted()
	grid := res.Grid.Series.CumulativeDiscounted()
	for y := 0; y < c; y++ {
		assert.Less(t, slb[y], grid[y], "year %d", y)
	}
	assert.GreaterOrEqual(t, slb[c], grid[c])

	require.True(t, res.SLB.Metrics.PaybackYear.IsValid())
	assert.Equal(t, 7, res.SLB.Metrics.PaybackYear.Value())
}

func TestCompareDiscountRateInvariance(t *testing.T) {
	params := highUsage()
	base := Compare(params, model.DefaultOptions())

	params.DiscountRate = 0.12
	other := Compare(params, model.DefaultOptions())

	assert.Equal(t, base.SLB.Series.Nominal(), other.SLB.Series.Nominal())
	assert.Equal(t, base.Grid.Series.Nominal(), other.Grid.Series.Nominal())
	assert.Equal(t, base.SLB.Metrics.PaybackYear, other.SLB.Metrics.PaybackYear)
	assert.Equal(t, base.Grid.Metrics.PaybackYear, other.Grid.Metrics.PaybackYear)
	require.True(t, other.SLB.Metrics.IRR.IsValid())
	assert.InDelta(t, base.SLB.Metrics.IRR.Value(), other.SLB.Metrics.IRR.Value(), 1e-9)

	assert.NotEqual(t, base.SLB.Metrics.NPV, other.SLB.Metrics.NPV)
	assert.NotEqual(t, base.SLB.Series.CumulativeDiscounted(), other.SLB.Series.CumulativeDiscounted())
}

func TestCompareVariantGating(t *testing.T) {
	params := highUsage()

	disc := Compare(params, model.Options{Variant: model.VariantDiscounted, Sign: model.SignAsSpecified})
	assert.False(t, disc.HasMetrics)
	assert.False(t, disc.SLB.Metrics.IRR.IsValid())
	assert.Zero(t, disc.SLB.Metrics.NPV)
	assert.False(t, disc.CrossoverYear.IsValid())
	assert.Zero(t, disc.Demand.EnergyForSalePerMonthKWh)
	assert.Equal(t, "Off-grid SLB", disc.SLB.Series.Label)

	metrics := Compare(params, model.Options{Variant: model.VariantMetrics, Sign: model.SignAsSpecified})
	assert.True(t, metrics.HasMetrics)
	assert.True(t, metrics.SLB.Metrics.IRR.IsValid())
	assert.False(t, metrics.CrossoverYear.IsValid())

	// same discounted series in both early variants
	assert.Equal(t, disc.SLB.Series.CumulativeDiscounted(), metrics.SLB.Series.CumulativeDiscounted())
}

func TestCompareCorrectedSignConvention(t *testing.T) {
	res := Compare(highUsage(), model.Options{Variant: model.VariantFeedIn, Sign: model.SignCorrected})

	// revenue - cost - opex is negative every year, so nothing is ever recovered
	for _, r := range res.SLB.Series.Rows[1 : len(res.SLB.Series.Rows)-1] {
		assert.Less(t, r.Nominal, 0.0)
	}
	assert.False(t, res.SLB.Metrics.IRR.IsValid())
	assert.False(t, res.SLB.Metrics.PaybackYear.IsValid())
	assert.Equal(t, finance.NPV(0.08, res.SLB.Series.Nominal()), res.SLB.Metrics.NPV)
}

func TestCompareCorrectedSignDeepNegativeIRR(t *testing.T) {
	p := model.DefaultParams()
	p.AnalysisYears = 7
	p.ElectricityPricePerKWh = 0.1
	p.AnnualOpexSLB = 2000

	res := Compare(p, model.Options{Variant: model.VariantFeedIn, Sign: model.SignCorrected})

	irr := res.SLB.Metrics.IRR
	require.True(t, irr.IsValid())
	assert.InDelta(t, -0.9543, irr.Value(), 1e-4)
}
