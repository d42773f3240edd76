package demand

import "slb-charger-econ/internal/model"

// Demand is the energy profile derived from EV usage.
// Units: kWh, revenue in USD/year.
type Demand struct {
	MonthlyConsumptionKWh float64
	AnnualEnergyKWh       float64

	// Zero unless feed-in is modeled.
	EnergyForSalePerMonthKWh float64
	AnnualFeedInRevenue      float64
}

// Compute derives consumption and, when feedIn is set, the surplus energy the
// SLB system can export on days the vehicle is not charged.
// Inputs are not range-checked.
func Compute(p model.Params, feedIn bool) Demand {
	share := p.EVChargePercent / 100
	d := Demand{
		MonthlyConsumptionKWh: p.EVBatteryCapacityKWh * share * p.EVChargingSessionsPerMonth,
	}
	d.AnnualEnergyKWh = d.MonthlyConsumptionKWh * 12

	if feedIn {
		d.EnergyForSalePerMonthKWh = p.EVBatteryCapacityKWh * (1 - share) * p.EVDaysNoChargingPerMonth * p.FeedInEfficiency
		d.AnnualFeedInRevenue = d.EnergyForSalePerMonthKWh * 12 * p.FeedInTariff()
	}
	return d
}
