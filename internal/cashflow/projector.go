package cashflow

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"slb-charger-econ/internal/demand"
	"slb-charger-econ/internal/model"
)

type Projector struct {
	Options model.Options
}

func New(opts model.Options) *Projector { return &Projector{Options: opts} }

// Project builds the SLB and grid-only series for one parameter set.
// d must come from demand.Compute with the same params.
func (p *Projector) Project(params model.Params, d demand.Demand) Projection {
	return Projection{
		SLB:  p.SLB(params, d),
		Grid: p.Grid(params, d),
	}
}

// SLB projects the PV + second-life battery system: capex at year 0, escalated
// energy value (plus feed-in revenue when modeled) less opex each year, and the
// residual value in the final year.
func (p *Projector) SLB(params model.Params, d demand.Demand) Series {
	feedIn := p.Options.Variant.ModelsFeedIn()
	r := recipe{
		capex:    params.TotalCapexSLB(),
		residual: params.ResidualValue(),
		annual: func(year int) float64 {
			esc := escalation(params.InflationRate, year)
			cost := params.ElectricityPricePerKWh * esc * d.AnnualEnergyKWh
			revenue := 0.0
			if feedIn {
				revenue = params.FeedInTariff() * esc * d.EnergyForSalePerMonthKWh * 12
			}
			if p.Options.Sign == model.SignCorrected {
				return revenue - cost - params.AnnualOpexSLB
			}
			return (cost + revenue) - params.AnnualOpexSLB
		},
	}
	return build(model.ScenarioSLB, p.Options.Variant, params.AnalysisYears, params.DiscountRate, r)
}

// Grid projects the conventional charger: no capex, no opex, only the
// escalating cost of grid energy.
func (p *Projector) Grid(params model.Params, d demand.Demand) Series {
	r := recipe{
		annual: func(year int) float64 {
			return -(params.ElectricityPricePerKWh * escalation(params.InflationRate, year) * d.AnnualEnergyKWh)
		},
	}
	return build(model.ScenarioGrid, p.Options.Variant, params.AnalysisYears, params.DiscountRate, r)
}

// recipe describes a scenario's cash flows; capex is a positive outlay.
type recipe struct {
	capex    float64
	residual float64
	annual   func(year int) float64
}

func build(id model.ScenarioID, v model.Variant, years int, discountRate float64, r recipe) Series {
	n := years + 1
	nominal := make([]float64, n)
	discounted := make([]float64, n)

	nominal[0] = -r.capex
	discounted[0] = -r.capex
	for y := 1; y < n; y++ {
		cf := r.annual(y)
		if y == years {
			cf += r.residual
		}
		nominal[y] = cf
		discounted[y] = cf / math.Pow(1+discountRate, float64(y))
	}

	cumNominal := floats.CumSum(make([]float64, n), nominal)
	cumDiscounted := floats.CumSum(make([]float64, n), discounted)

	rows := make([]Row, n)
	for y := range rows {
		rows[y] = Row{
			Year:          y,
			Nominal:       nominal[y],
			Discounted:    discounted[y],
			CumNominal:    cumNominal[y],
			CumDiscounted: cumDiscounted[y],
		}
	}
	return Series{Scenario: id, Label: id.Label(v), Rows: rows}
}

// escalation is the inflation multiplier for year y; year 1 is unescalated.
func escalation(rate float64, year int) float64 {
	return math.Pow(1+rate, float64(year-1))
}
