package payoff

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteCurveCSV writes a payoff curve as a two-column CSV for plotting.
func WriteCurveCSV(path string, points []Point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"price", "pnl"}); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p.Price, 'f', 2, 64),
			strconv.FormatFloat(p.PNL, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}
