package analysis

import (
	"slb-charger-econ/internal/cashflow"
	"slb-charger-econ/internal/demand"
	"slb-charger-econ/internal/finance"
	"slb-charger-econ/internal/maybe"
	"slb-charger-econ/internal/model"
)

// Metrics are computed on a scenario's nominal series, NPV at the run's
// discount rate.
type Metrics struct {
	IRR         maybe.Maybe[float64]
	NPV         float64
	PaybackYear maybe.Maybe[int]
}

type ScenarioResult struct {
	Series  cashflow.Series
	Metrics Metrics
}

// Result is the full output of one comparison run.
type Result struct {
	Params  model.Params
	Options model.Options
	Demand  demand.Demand

	SLB  ScenarioResult
	Grid ScenarioResult

	// HasMetrics is false for the discounted-only variant; Metrics are then zero.
	HasMetrics    bool
	CrossoverYear maybe.Maybe[int]
}

// Compare runs demand, projection and metrics for both scenarios.
// Params are used as given; range checks belong to the caller.
func Compare(params model.Params, opts model.Options) *Result {
	d := demand.Compute(params, opts.Variant.ModelsFeedIn())
	proj := cashflow.New(opts).Project(params, d)

	res := &Result{
		Params:        params,
		Options:       opts,
		Demand:        d,
		SLB:           ScenarioResult{Series: proj.SLB},
		Grid:          ScenarioResult{Series: proj.Grid},
		HasMetrics:    opts.Variant.HasMetrics(),
		CrossoverYear: maybe.None[int](),
	}

	if res.HasMetrics {
		res.SLB.Metrics = ComputeMetrics(proj.SLB, params.DiscountRate)
		res.Grid.Metrics = ComputeMetrics(proj.Grid, params.DiscountRate)
	}
	if opts.Variant.HasCrossover() {
		res.CrossoverYear = finance.CrossoverYear(proj.SLB.CumulativeDiscounted(), proj.Grid.CumulativeDiscounted())
	}
	return res
}

// ComputeMetrics evaluates IRR, NPV and payback on the nominal series. Each
// metric is independent; an unsolvable IRR leaves the others intact.
func ComputeMetrics(s cashflow.Series, discountRate float64) Metrics {
	nominal := s.Nominal()
	return Metrics{
		IRR:         finance.IRR(nominal),
		NPV:         finance.NPV(discountRate, nominal),
		PaybackYear: finance.PaybackYear(nominal),
	}
}

// Projection returns both series of the result.
func (r *Result) Projection() cashflow.Projection {
	return cashflow.Projection{SLB: r.SLB.Series, Grid: r.Grid.Series}
}
