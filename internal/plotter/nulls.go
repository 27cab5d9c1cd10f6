package plotter

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/transforms"
)

// PlotNullPercentage draws the null percentage of every column holding nulls as horizontal bars,
// the largest at the top, each annotated with its percentage.
func (p *Plotter) PlotNullPercentage(s transforms.NullSummary) (string, error) {
	counts := s.WithNulls()
	if len(counts) == 0 {
		return "", ErrNoData
	}

	// Bars stack upwards from index 0, so reverse the descending order.
	n := len(counts)
	names := make([]string, n)
	values := make(plotter.Values, n)
	labels := plotter.XYLabels{XYs: make(plotter.XYs, n), Labels: make([]string, n)}
	for i, c := range counts {
		j := n - 1 - i
		names[j] = c.Column
		values[j] = c.Percentage
		labels.XYs[j] = plotter.XY{X: c.Percentage, Y: float64(j)}
		labels.Labels[j] = fmt.Sprintf("%1.2f%%", c.Percentage)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(14))
	if err != nil {
		return "", err
	}
	bars.Horizontal = true
	bars.Color = p.color(0)
	bars.LineStyle.Width = 0

	annotations, err := plotter.NewLabels(labels)
	if err != nil {
		return "", err
	}
	for i := range annotations.TextStyle {
		annotations.TextStyle[i].XAlign = 0
		annotations.TextStyle[i].YAlign = -0.5
	}
	annotations.Offset = vg.Point{X: vg.Points(3)}

	pl := plot.New()
	pl.Title.Text = "Percentage of null values"
	pl.X.Label.Text = "null %"
	pl.X.Min = 0
	pl.X.Max = 110
	pl.Add(bars, annotations)
	pl.NominalY(names...)

	height := p.cfg.Height
	if rows := 0.3 * float64(n); rows > height {
		height = rows
	}
	single := *p
	single.cfg.Height = height
	return single.render("null_percentage.png", []*plot.Plot{pl}, 1)
}
