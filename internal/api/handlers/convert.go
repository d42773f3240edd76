package handlers

import (
	"slb-charger-econ/internal/analysis"
	"slb-charger-econ/internal/api/models"
	"slb-charger-econ/internal/report"
)

func buildCompareResponse(res *analysis.Result, includeSeries bool) models.CompareResponse {
	resp := models.CompareResponse{
		Variant:        string(res.Options.Variant),
		SignConvention: string(res.Options.Sign),
		Params:         res.Params,
		Demand: models.DemandInfo{
			MonthlyConsumptionKWh:    res.Demand.MonthlyConsumptionKWh,
			AnnualEnergyKWh:          res.Demand.AnnualEnergyKWh,
			EnergyForSalePerMonthKWh: res.Demand.EnergyForSalePerMonthKWh,
			AnnualFeedInRevenue:      res.Demand.AnnualFeedInRevenue,
		},
		CrossoverYear: res.CrossoverYear,
		Lines:         report.Lines(res),
	}

	for _, s := range []analysis.ScenarioResult{res.SLB, res.Grid} {
		sr := models.ScenarioResponse{
			ID:                   string(s.Series.Scenario),
			Label:                s.Series.Label,
			Years:                s.Series.Years(),
			CumulativeDiscounted: s.Series.CumulativeDiscounted(),
		}
		if includeSeries {
			sr.Nominal = s.Series.Nominal()
			sr.Discounted = s.Series.Discounted()
		}
		if res.HasMetrics {
			sr.Metrics = buildMetrics(s.Metrics)
		}
		resp.Scenarios = append(resp.Scenarios, sr)
	}

	for _, r := range report.Table(res) {
		resp.Table = append(resp.Table, models.TableRow{Year: r.Year, SLB: r.SLB, Grid: r.Grid})
	}
	return resp
}

func buildMetrics(m analysis.Metrics) *models.MetricsResponse {
	return &models.MetricsResponse{
		IRR:         m.IRR,
		NPV:         m.NPV,
		PaybackYear: m.PaybackYear,
		Display: models.MetricsDisplay{
			IRR:     report.Percent(m.IRR),
			NPV:     report.Currency(m.NPV),
			Payback: report.Years(m.PaybackYear),
		},
	}
}

func buildSummary(res *analysis.Result) models.Summary {
	slb := res.SLB.Series.CumulativeDiscounted()
	grid := res.Grid.Series.CumulativeDiscounted()
	s := models.Summary{
		CrossoverYear: res.CrossoverYear,
		FinalSLB:      slb[len(slb)-1],
		FinalGrid:     grid[len(grid)-1],
	}
	if res.HasMetrics {
		s.SLB = buildMetrics(res.SLB.Metrics)
		s.Grid = buildMetrics(res.Grid.Metrics)
	}
	return s
}
