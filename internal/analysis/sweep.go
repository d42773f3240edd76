package analysis

import (
	"fmt"

	"slb-charger-econ/internal/maybe"
	"slb-charger-econ/internal/model"
)

// SweepPoint summarizes one run of a sensitivity sweep.
type SweepPoint struct {
	Value float64

	SLB  Metrics
	Grid Metrics

	CrossoverYear maybe.Maybe[int]

	// Final cumulative discounted cash flow per scenario.
	FinalSLB  float64
	FinalGrid float64
}

// Sweep reruns the comparison with the named parameter set to each value in
// turn, everything else held at params.
func Sweep(params model.Params, opts model.Options, name string, values []float64) ([]SweepPoint, error) {
	if _, ok := model.LookupParam(name); !ok {
		return nil, fmt.Errorf("unknown parameter %q", name)
	}

	out := make([]SweepPoint, 0, len(values))
	for _, v := range values {
		p, err := params.With(name, v)
		if err != nil {
			return nil, err
		}
		res := Compare(p, opts)
		out = append(out, SweepPoint{
			Value:         v,
			SLB:           res.SLB.Metrics,
			Grid:          res.Grid.Metrics,
			CrossoverYear: res.CrossoverYear,
			FinalSLB:      last(res.SLB.Series.CumulativeDiscounted()),
			FinalGrid:     last(res.Grid.Series.CumulativeDiscounted()),
		})
	}
	return out, nil
}

// Steps returns count evenly spaced values from lo to hi inclusive.
func Steps(lo, hi float64, count int) []float64 {
	if count <= 1 {
		return []float64{lo}
	}
	out := make([]float64, count)
	step := (hi - lo) / float64(count-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	out[count-1] = hi
	return out
}

func last(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return xs[len(xs)-1]
}
