package analysis

import (
	"fmt"

	"slb-charger-econ/internal/model"
)

// Variation is a named set of parameter overrides applied on top of a base.
type Variation struct {
	Name   string
	Params map[string]float64
}

type VariationResult struct {
	Name   string
	Result *Result
	Err    error
}

// CompareVariations runs base plus each variation. A variation that names an
// unknown parameter or leaves a range is reported with Err and not run; the
// rest still complete.
func CompareVariations(base model.Params, opts model.Options, variations []Variation) []VariationResult {
	out := make([]VariationResult, 0, len(variations))
	for _, v := range variations {
		p, err := base.Apply(v.Params)
		if err == nil {
			err = p.Validate()
		}
		if err != nil {
			out = append(out, VariationResult{Name: v.Name, Err: fmt.Errorf("variation %q: %w", v.Name, err)})
			continue
		}
		out = append(out, VariationResult{Name: v.Name, Result: Compare(p, opts)})
	}
	return out
}
