package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"slb-charger-econ/internal/analysis"
	"slb-charger-econ/internal/cashflow"
	"slb-charger-econ/internal/config"
	"slb-charger-econ/internal/logging"
	"slb-charger-econ/internal/model"
	"slb-charger-econ/internal/report"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "compare":
		err = cmdCompare(os.Args[2:])
	case "sweep":
		err = cmdSweep(os.Args[2:])
	case "params":
		cmdParams()
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		logging.New(os.Stderr, os.Getenv("LOG_LEVEL")).Error("command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli compare [--config examples/config.yaml] [--set capex_pv=12000] [--out results/table.csv]")
	fmt.Println("  cli sweep --param annual_opex_slb --from 0 --to 5000 --steps 11")
	fmt.Println("  cli sweep --param discount_rate --values 0.04,0.08,0.12")
	fmt.Println("  cli params")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - --variant is one of discounted, metrics, feed_in (default)")
	fmt.Println("  - --sign is as_specified (default) or corrected")
	fmt.Println("  - run `cli params` for parameter names and ranges")
}

// runFlags are shared by compare and sweep.
type runFlags struct {
	cfgPath *string
	variant *string
	sign    *string
	set     *map[string]string
}

func addRunFlags(fs *flag.FlagSet) runFlags {
	return runFlags{
		cfgPath: fs.String("config", "", "Path to YAML config (optional, defaults otherwise)"),
		variant: fs.String("variant", "", "Model variant, overrides the config"),
		sign:    fs.String("sign", "", "SLB sign convention, overrides the config"),
		set:     fs.StringToString("set", nil, "Parameter overrides as name=value"),
	}
}

// resolve loads the config (or defaults), applies flag overrides and validates.
func (f runFlags) resolve() (model.Params, model.Options, error) {
	cfg := &config.Config{Params: model.DefaultParams()}
	if *f.cfgPath != "" {
		loaded, err := config.LoadUnchecked(*f.cfgPath)
		if err != nil {
			return model.Params{}, model.Options{}, err
		}
		cfg = loaded
	}
	if *f.variant != "" {
		cfg.Variant = *f.variant
	}
	if *f.sign != "" {
		cfg.SignConvention = *f.sign
	}

	overrides := make(map[string]float64, len(*f.set))
	for name, raw := range *f.set {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return model.Params{}, model.Options{}, fmt.Errorf("--set %s: %w", name, err)
		}
		overrides[name] = v
	}
	params, err := cfg.Params.Apply(overrides)
	if err != nil {
		return model.Params{}, model.Options{}, err
	}
	cfg.Params = params

	if err := cfg.Validate(); err != nil {
		return model.Params{}, model.Options{}, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return model.Params{}, model.Options{}, err
	}
	return cfg.Params, opts, nil
}

func cmdCompare(args []string) error {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	rf := addRunFlags(fs)
	outPath := fs.String("out", "", "Optional path to write the cumulative table CSV")
	_ = fs.Parse(args)

	params, opts, err := rf.resolve()
	if err != nil {
		return err
	}

	res := analysis.Compare(params, opts)
	if err := report.WriteText(os.Stdout, res); err != nil {
		return err
	}

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			return err
		}
		if err := cashflow.WriteTableCSV(*outPath, res.Projection()); err != nil {
			return err
		}
		fmt.Printf("\nWrote %d rows to %s\n", params.AnalysisYears+1, *outPath)
	}
	return nil
}

func cmdSweep(args []string) error {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	rf := addRunFlags(fs)
	name := fs.String("param", "annual_opex_slb", "Parameter to sweep")
	values := fs.Float64Slice("values", nil, "Explicit comma-separated values (overrides --from/--to/--steps)")
	from := fs.Float64("from", 0, "First value")
	to := fs.Float64("to", 5000, "Last value")
	steps := fs.Int("steps", 11, "Number of evenly spaced values")
	_ = fs.Parse(args)

	ps, ok := model.LookupParam(*name)
	if !ok {
		return fmt.Errorf("unknown parameter %q", *name)
	}
	vals := *values
	if len(vals) == 0 {
		vals = analysis.Steps(*from, *to, *steps)
	}
	for _, v := range vals {
		if err := ps.Check(v); err != nil {
			return err
		}
	}

	params, opts, err := rf.resolve()
	if err != nil {
		return err
	}
	points, err := analysis.Sweep(params, opts, *name, vals)
	if err != nil {
		return err
	}

	return report.WriteSweep(os.Stdout, ps.Name, points)
}

func cmdParams() {
	fmt.Printf("%-32s %-38s %-14s %-10s %-10s %-10s\n", "name", "label", "unit", "min", "max", "default")
	for _, s := range model.ParamSpecs() {
		fmt.Printf("%-32s %-38s %-14s %-10g %-10g %-10g\n", s.Name, s.Label, s.Unit, s.Min, s.Max, s.Default)
	}
}
