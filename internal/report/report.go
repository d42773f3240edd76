package report

import (
	"fmt"
	"io"
	"strings"

	"slb-charger-econ/internal/analysis"
)

// MetricLine is the one-line summary of a scenario's metrics.
func MetricLine(label string, m analysis.Metrics) string {
	return fmt.Sprintf("%s → IRR: %s | NPV: %s | Payback: %s",
		label, Percent(m.IRR), Currency(m.NPV), Years(m.PaybackYear))
}

// Lines returns the text block shown under the chart. It is empty for runs
// without metrics.
func Lines(res *analysis.Result) []string {
	if !res.HasMetrics {
		return nil
	}
	lines := []string{
		MetricLine(res.SLB.Series.Label, res.SLB.Metrics),
		MetricLine(res.Grid.Series.Label, res.Grid.Metrics),
	}
	if res.Options.Variant.HasCrossover() {
		lines = append(lines, "Crossover Point: "+Crossover(res.CrossoverYear))
	}
	return lines
}

// TableRow is one year of the cumulative discounted table.
type TableRow struct {
	Year int
	SLB  string
	Grid string
}

func Table(res *analysis.Result) []TableRow {
	slb := res.SLB.Series.CumulativeDiscounted()
	grid := res.Grid.Series.CumulativeDiscounted()
	out := make([]TableRow, len(slb))
	for y := range slb {
		out[y] = TableRow{Year: y, SLB: Fixed2(slb[y])}
		if y < len(grid) {
			out[y].Grid = Fixed2(grid[y])
		}
	}
	return out
}

// WriteText prints the table and the metric lines as aligned plain text.
func WriteText(w io.Writer, res *analysis.Result) error {
	slbLabel, gridLabel := res.SLB.Series.Label, res.Grid.Series.Label
	width := max(len(slbLabel), len(gridLabel), 14)

	var b strings.Builder
	fmt.Fprintf(&b, "%-4s  %*s  %*s\n", "Year", width, slbLabel, width, gridLabel)
	for _, r := range Table(res) {
		fmt.Fprintf(&b, "%-4d  %*s  %*s\n", r.Year, width, r.SLB, width, r.Grid)
	}
	if lines := Lines(res); len(lines) > 0 {
		b.WriteString("\n")
		for _, l := range lines {
			b.WriteString(l)
			b.WriteString("\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteSweep prints one aligned row per swept value.
func WriteSweep(w io.Writer, param string, points []analysis.SweepPoint) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %-10s %-16s %-10s %-16s %s\n", param, "slb irr", "slb npv", "payback", "grid npv", "crossover")
	for _, pt := range points {
		fmt.Fprintf(&b, "%-12g %-10s %-16s %-10s %-16s %s\n",
			pt.Value,
			Percent(pt.SLB.IRR),
			Currency(pt.SLB.NPV),
			Years(pt.SLB.PaybackYear),
			Currency(pt.Grid.NPV),
			Crossover(pt.CrossoverYear),
		)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
