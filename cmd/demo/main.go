package main

import (
	"fmt"
	"os"

	"slb-charger-econ/internal/analysis"
	"slb-charger-econ/internal/config"
	"slb-charger-econ/internal/demand"
	"slb-charger-econ/internal/model"
	"slb-charger-econ/internal/report"

	flag "github.com/spf13/pflag"
)

// Demo:
// - Start from the default household parameters (or a config)
// - Derive the charging demand
// - Project both scenarios and print the table with the metric lines
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	flag.Parse()

	params := model.DefaultParams()
	opts := model.DefaultOptions()
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		params = cfg.Params
		if opts, err = cfg.Options(); err != nil {
			panic(err)
		}
	}

	d := demand.Compute(params, opts.Variant.ModelsFeedIn())
	fmt.Printf("Monthly consumption: %.2f kWh\n", d.MonthlyConsumptionKWh)
	fmt.Printf("Annual energy:       %.2f kWh\n", d.AnnualEnergyKWh)
	if opts.Variant.ModelsFeedIn() {
		fmt.Printf("Energy for sale:     %.2f kWh/month\n", d.EnergyForSalePerMonthKWh)
		fmt.Printf("Feed-in revenue:     %s/year\n", report.Currency(d.AnnualFeedInRevenue))
	}
	fmt.Printf("Total SLB CAPEX:     %s\n\n", report.Currency(params.TotalCapexSLB()))

	res := analysis.Compare(params, opts)
	if err := report.WriteText(os.Stdout, res); err != nil {
		panic(err)
	}
}
