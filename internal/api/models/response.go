package models

import (
	"slb-charger-econ/internal/maybe"
	"slb-charger-econ/internal/model"
)

// CompareResponse represents the response from a comparison run
type CompareResponse struct {
	Variant        string             `json:"variant"`
	SignConvention string             `json:"sign_convention"`
	Params         model.Params       `json:"params"`
	Demand         DemandInfo         `json:"demand"`
	Scenarios      []ScenarioResponse `json:"scenarios"`
	CrossoverYear  maybe.Maybe[int]   `json:"crossover_year"`
	Table          []TableRow         `json:"table"`
	Lines          []string           `json:"lines,omitempty"`
}

// DemandInfo contains the derived energy quantities
type DemandInfo struct {
	MonthlyConsumptionKWh    float64 `json:"monthly_consumption_kwh"`
	AnnualEnergyKWh          float64 `json:"annual_energy_kwh"`
	EnergyForSalePerMonthKWh float64 `json:"energy_for_sale_per_month_kwh"`
	AnnualFeedInRevenue      float64 `json:"annual_feed_in_revenue"`
}

// ScenarioResponse contains one scenario's chart series and metrics
type ScenarioResponse struct {
	ID                   string           `json:"id"`
	Label                string           `json:"label"`
	Years                []int            `json:"years"`
	CumulativeDiscounted []float64        `json:"cumulative_discounted"`
	Nominal              []float64        `json:"nominal,omitempty"`
	Discounted           []float64        `json:"discounted,omitempty"`
	Metrics              *MetricsResponse `json:"metrics,omitempty"` // absent for the discounted variant
}

// MetricsResponse contains per-scenario financial metrics; undefined values are null
type MetricsResponse struct {
	IRR         maybe.Maybe[float64] `json:"irr"`
	NPV         float64              `json:"npv"`
	PaybackYear maybe.Maybe[int]     `json:"payback_year"`
	Display     MetricsDisplay       `json:"display"`
}

// MetricsDisplay holds the formatted strings, "N/A" when undefined
type MetricsDisplay struct {
	IRR     string `json:"irr"`
	NPV     string `json:"npv"`
	Payback string `json:"payback"`
}

// TableRow is one year of cumulative discounted cash flow, 2 decimals
type TableRow struct {
	Year int    `json:"year"`
	SLB  string `json:"slb"`
	Grid string `json:"grid"`
}

// CompareVariationsResponse represents the response from a variations comparison
type CompareVariationsResponse struct {
	Comparison []VariationResult `json:"comparison"`
}

// VariationResult contains results for one variation, or why it was skipped
type VariationResult struct {
	Name    string       `json:"name"`
	Summary *Summary     `json:"summary,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// Summary condenses a comparison to its metrics and final cumulative values
type Summary struct {
	SLB           *MetricsResponse `json:"slb,omitempty"`
	Grid          *MetricsResponse `json:"grid,omitempty"`
	CrossoverYear maybe.Maybe[int] `json:"crossover_year"`
	FinalSLB      float64          `json:"final_cumulative_slb"`
	FinalGrid     float64          `json:"final_cumulative_grid"`
}

// SensitivityResponse represents the response from a parameter sweep
type SensitivityResponse struct {
	Param  string             `json:"param"`
	Points []SensitivityPoint `json:"points"`
}

// SensitivityPoint is one swept value
type SensitivityPoint struct {
	Value float64 `json:"value"`
	Summary
}

// ParameterInfo describes an input parameter
type ParameterInfo struct {
	Name    string  `json:"name"`
	Label   string  `json:"label"`
	Unit    string  `json:"unit"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Default float64 `json:"default"`
	Integer bool    `json:"integer,omitempty"`
}

// PresetInfo represents information about a parameter preset
type PresetInfo struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Params      model.Params `json:"params"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
