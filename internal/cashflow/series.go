package cashflow

import "slb-charger-econ/internal/model"

// Row is one year of a scenario's projection.
// Year 0 carries only the capital outlay.
type Row struct {
	Year int

	Nominal    float64
	Discounted float64

	CumNominal    float64
	CumDiscounted float64
}

// Series is the year-indexed projection for one scenario, years 0..N.
type Series struct {
	Scenario model.ScenarioID
	Label    string
	Rows     []Row
}

func (s Series) Nominal() []float64 {
	out := make([]float64, len(s.Rows))
	for i, r := range s.Rows {
		out[i] = r.Nominal
	}
	return out
}

func (s Series) Discounted() []float64 {
	out := make([]float64, len(s.Rows))
	for i, r := range s.Rows {
		out[i] = r.Discounted
	}
	return out
}

// CumulativeDiscounted is the charted and tabulated series.
func (s Series) CumulativeDiscounted() []float64 {
	out := make([]float64, len(s.Rows))
	for i, r := range s.Rows {
		out[i] = r.CumDiscounted
	}
	return out
}

func (s Series) CumulativeNominal() []float64 {
	out := make([]float64, len(s.Rows))
	for i, r := range s.Rows {
		out[i] = r.CumNominal
	}
	return out
}

// Years returns 0..N.
func (s Series) Years() []int {
	out := make([]int, len(s.Rows))
	for i, r := range s.Rows {
		out[i] = r.Year
	}
	return out
}

// Projection holds both scenarios of one run.
type Projection struct {
	SLB  Series
	Grid Series
}
