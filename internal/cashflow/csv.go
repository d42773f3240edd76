package cashflow

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

// WriteTableCSV writes the cumulative discounted table of both scenarios to path.
func WriteTableCSV(path string, proj Projection) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteTable(f, proj)
}

// WriteTable writes one row per year with each scenario's cumulative
// discounted cash flow, 2 decimals.
func WriteTable(out io.Writer, proj Projection) error {
	w := csv.NewWriter(out)

	header := []string{
		"year",
		proj.SLB.Label,
		proj.Grid.Label,
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, r := range proj.SLB.Rows {
		grid := 0.0
		if i < len(proj.Grid.Rows) {
			grid = proj.Grid.Rows[i].CumDiscounted
		}
		row := []string{
			strconv.Itoa(r.Year),
			fmtFloat(r.CumDiscounted),
			fmtFloat(grid),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
