package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"

	"github.com/drakos74/linear-regression/internal/algo/regression"
	lrmath "github.com/drakos74/linear-regression/internal/math"
)

const (
	plotHeight = 10
	plotWidth  = 60
)

// Table renders the training checkpoints and the reference line as a table.
func Table(w io.Writer, result regression.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"step", "loss", "W", "b"})
	if len(result.Initial) >= 2 {
		table.Append([]string{
			"0",
			lrmath.Format(first(result.Losses)),
			lrmath.Format(result.Initial[0]),
			lrmath.Format(result.Initial[1]),
		})
	}
	for _, c := range result.Checkpoints {
		table.Append([]string{
			strconv.Itoa(c.Step),
			lrmath.Format(c.Loss),
			lrmath.Format(c.Slope),
			lrmath.Format(c.Intercept),
		})
	}
	if ref := result.Reference; ref != nil {
		table.Append([]string{
			"exact",
			"",
			lrmath.Format(ref.Slope),
			lrmath.Format(ref.Intercept),
		})
	}
	table.Render()
}

// Plot renders the loss trajectory of the training run.
func Plot(result regression.Result) string {
	if len(result.Losses) == 0 {
		return ""
	}
	return asciigraph.Plot(result.Losses,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(fmt.Sprintf("loss over %d steps at rate %v", result.Steps, result.Rate)),
	)
}

// Write renders the table and the loss plot.
func Write(w io.Writer, result regression.Result) error {
	Table(w, result)
	_, err := fmt.Fprintln(w, Plot(result))
	return err
}

func first(ff []float64) float64 {
	if len(ff) == 0 {
		return 0
	}
	return ff[0]
}
