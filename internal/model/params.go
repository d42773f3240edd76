package model

import (
	"errors"
	"fmt"
	"math"
)

// FeedInTariffFactor is the share of the retail electricity price paid for
// energy exported to the grid.
const FeedInTariffFactor = 0.7

// Params defines the inputs of one comparison run.
// Units:
// - rates (DiscountRate, InflationRate, FeedInEfficiency, ResidualValuePercent): fraction, 0.08 = 8%
// - EVChargePercent: percent 10..100
// - capacities: kWh
// - money: USD, prices USD/kWh
type Params struct {
	AnalysisYears        int     `yaml:"analysis_years" json:"analysis_years"`
	DiscountRate         float64 `yaml:"discount_rate" json:"discount_rate"`
	InflationRate        float64 `yaml:"inflation_rate" json:"inflation_rate"`
	ResidualValuePercent float64 `yaml:"residual_value_percent" json:"residual_value_percent"`

	EVBatteryCapacityKWh       float64 `yaml:"ev_battery_capacity_kwh" json:"ev_battery_capacity_kwh"`
	EVChargePercent            float64 `yaml:"ev_charge_percent" json:"ev_charge_percent"`
	EVChargingSessionsPerMonth float64 `yaml:"ev_charging_sessions_per_month" json:"ev_charging_sessions_per_month"`
	EVDaysNoChargingPerMonth   float64 `yaml:"ev_days_no_charging_per_month" json:"ev_days_no_charging_per_month"`
	FeedInEfficiency           float64 `yaml:"feed_in_efficiency" json:"feed_in_efficiency"`

	CapexPV       float64 `yaml:"capex_pv" json:"capex_pv"`
	CapexBattery  float64 `yaml:"capex_battery" json:"capex_battery"`
	AnnualOpexSLB float64 `yaml:"annual_opex_slb" json:"annual_opex_slb"`

	ElectricityPricePerKWh float64 `yaml:"electricity_price_per_kwh" json:"electricity_price_per_kwh"`
}

// DefaultParams returns the defaults offered by the input surface.
func DefaultParams() Params {
	var p Params
	for _, s := range paramSpecs {
		s.set(&p, s.Default)
	}
	return p
}

// TotalCapexSLB is the one-time outlay of the SLB system at year 0.
func (p Params) TotalCapexSLB() float64 {
	return p.CapexPV + p.CapexBattery
}

// ResidualValue is recovered in the final year of the horizon.
func (p Params) ResidualValue() float64 {
	return p.ResidualValuePercent * p.TotalCapexSLB()
}

func (p Params) FeedInTariff() float64 {
	return FeedInTariffFactor * p.ElectricityPricePerKWh
}

// Get returns the value of the named parameter.
func (p Params) Get(name string) (float64, error) {
	s, ok := LookupParam(name)
	if !ok {
		return 0, fmt.Errorf("unknown parameter %q", name)
	}
	return s.get(p), nil
}

// With returns a copy of p with the named parameter replaced.
func (p Params) With(name string, v float64) (Params, error) {
	s, ok := LookupParam(name)
	if !ok {
		return p, fmt.Errorf("unknown parameter %q", name)
	}
	s.set(&p, v)
	return p, nil
}

// Apply overlays overrides onto p. Unknown names are an error; nothing is
// range-checked here, see Validate.
func (p Params) Apply(overrides map[string]float64) (Params, error) {
	out := p
	var errs []error
	for name, v := range overrides {
		next, err := out.With(name, v)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = next
	}
	if len(errs) > 0 {
		return p, errors.Join(errs...)
	}
	return out, nil
}

// Validate checks every parameter against its documented range and reports
// all violations at once.
func (p Params) Validate() error {
	var errs []error
	for _, s := range paramSpecs {
		if err := s.Check(s.get(p)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ParamSpec describes one input: its range, default and how to read/write it.
type ParamSpec struct {
	Name    string
	Label   string
	Unit    string
	Min     float64
	Max     float64
	Default float64
	Integer bool

	get func(Params) float64
	set func(*Params, float64)
}

// Check reports whether v is an acceptable value for this parameter.
func (s ParamSpec) Check(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be a finite number", s.Name)
	}
	if v < s.Min || v > s.Max {
		return fmt.Errorf("%s must be in [%g, %g], got %g", s.Name, s.Min, s.Max, v)
	}
	if s.Integer && v != math.Trunc(v) {
		return fmt.Errorf("%s must be an integer, got %g", s.Name, v)
	}
	return nil
}

var paramSpecs = []ParamSpec{
	{
		Name: "analysis_years", Label: "Analysis Horizon", Unit: "years",
		Min: 5, Max: 30, Default: 15, Integer: true,
		get: func(p Params) float64 { return float64(p.AnalysisYears) },
		set: func(p *Params, v float64) { p.AnalysisYears = int(math.Round(v)) },
	},
	{
		Name: "discount_rate", Label: "Discount Rate", Unit: "fraction/year",
		Min: 0, Max: 0.20, Default: 0.08,
		get: func(p Params) float64 { return p.DiscountRate },
		set: func(p *Params, v float64) { p.DiscountRate = v },
	},
	{
		Name: "inflation_rate", Label: "Electricity Inflation Rate", Unit: "fraction/year",
		Min: 0, Max: 0.15, Default: 0.03,
		get: func(p Params) float64 { return p.InflationRate },
		set: func(p *Params, v float64) { p.InflationRate = v },
	},
	{
		Name: "residual_value_percent", Label: "Residual Value (share of SLB CAPEX)", Unit: "fraction",
		Min: 0, Max: 1, Default: 0.10,
		get: func(p Params) float64 { return p.ResidualValuePercent },
		set: func(p *Params, v float64) { p.ResidualValuePercent = v },
	},
	{
		Name: "ev_battery_capacity_kwh", Label: "EV Battery Capacity", Unit: "kWh",
		Min: 10, Max: 200, Default: 40,
		get: func(p Params) float64 { return p.EVBatteryCapacityKWh },
		set: func(p *Params, v float64) { p.EVBatteryCapacityKWh = v },
	},
	{
		Name: "ev_charge_percent", Label: "Average Charge Level", Unit: "%",
		Min: 10, Max: 100, Default: 80, Integer: true,
		get: func(p Params) float64 { return p.EVChargePercent },
		set: func(p *Params, v float64) { p.EVChargePercent = v },
	},
	{
		Name: "ev_charging_sessions_per_month", Label: "Charging Sessions per Month", Unit: "sessions",
		Min: 1, Max: 60, Default: 10, Integer: true,
		get: func(p Params) float64 { return p.EVChargingSessionsPerMonth },
		set: func(p *Params, v float64) { p.EVChargingSessionsPerMonth = v },
	},
	{
		Name: "ev_days_no_charging_per_month", Label: "Days Without Charging per Month", Unit: "days",
		Min: 0, Max: 31, Default: 10, Integer: true,
		get: func(p Params) float64 { return p.EVDaysNoChargingPerMonth },
		set: func(p *Params, v float64) { p.EVDaysNoChargingPerMonth = v },
	},
	{
		Name: "feed_in_efficiency", Label: "Feed-in Efficiency", Unit: "fraction",
		Min: 0.5, Max: 1, Default: 0.9,
		get: func(p Params) float64 { return p.FeedInEfficiency },
		set: func(p *Params, v float64) { p.FeedInEfficiency = v },
	},
	{
		Name: "capex_pv", Label: "CAPEX - PV System", Unit: "USD",
		Min: 0, Max: 100000, Default: 15000,
		get: func(p Params) float64 { return p.CapexPV },
		set: func(p *Params, v float64) { p.CapexPV = v },
	},
	{
		Name: "capex_battery", Label: "CAPEX - Second-life Battery", Unit: "USD",
		Min: 0, Max: 100000, Default: 10000,
		get: func(p Params) float64 { return p.CapexBattery },
		set: func(p *Params, v float64) { p.CapexBattery = v },
	},
	{
		Name: "annual_opex_slb", Label: "Annual OPEX - SLB System", Unit: "USD/year",
		Min: 0, Max: 10000, Default: 500,
		get: func(p Params) float64 { return p.AnnualOpexSLB },
		set: func(p *Params, v float64) { p.AnnualOpexSLB = v },
	},
	{
		Name: "electricity_price_per_kwh", Label: "Electricity Price", Unit: "USD/kWh",
		Min: 0, Max: 1, Default: 0.25,
		get: func(p Params) float64 { return p.ElectricityPricePerKWh },
		set: func(p *Params, v float64) { p.ElectricityPricePerKWh = v },
	},
}

// ParamSpecs returns the catalog of inputs in display order.
func ParamSpecs() []ParamSpec {
	out := make([]ParamSpec, len(paramSpecs))
	copy(out, paramSpecs)
	return out
}

func LookupParam(name string) (ParamSpec, bool) {
	for _, s := range paramSpecs {
		if s.Name == name {
			return s, true
		}
	}
	return ParamSpec{}, false
}
