package models

// CompareRequest represents the request body for running a comparison.
// Params are overrides by name (see GET /api/v1/parameters); anything not
// given comes from the preset, or the defaults when no preset is named.
type CompareRequest struct {
	Preset         string             `json:"preset,omitempty"`          // preset id, e.g. "1_home"
	Variant        string             `json:"variant,omitempty"`         // "discounted", "metrics", "feed_in" (default)
	SignConvention string             `json:"sign_convention,omitempty"` // "as_specified" (default), "corrected"
	Params         map[string]float64 `json:"params,omitempty"`
	Options        CompareOptions     `json:"options,omitempty"`
}

// CompareOptions contains optional output switches
type CompareOptions struct {
	IncludeSeries bool `json:"include_series,omitempty"` // per-year nominal/discounted values, default: false
}

// CompareVariationsRequest represents a request to compare several parameter sets
type CompareVariationsRequest struct {
	Base       CompareRequest `json:"base"`
	Variations []Variation    `json:"variations" binding:"required,min=1,dive"`
}

// Variation defines a named set of overrides applied on top of the base
type Variation struct {
	Name   string             `json:"name" binding:"required"`
	Params map[string]float64 `json:"params,omitempty"`
}

// SensitivityRequest sweeps one parameter over explicit values
type SensitivityRequest struct {
	Base   CompareRequest `json:"base"`
	Param  string         `json:"param" binding:"required"`
	Values []float64      `json:"values" binding:"required,min=1,max=200"`
}
