package plotter

import (
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/frame"
)

const outlierColumns = 3

// PlotOutliers draws a box plot for every numeric column on a three-column grid.
func (p *Plotter) PlotOutliers(t *frame.Table) (string, error) {
	var plots []*plot.Plot
	for _, c := range t.Columns() {
		if c.Kind != frame.Numeric {
			continue
		}
		values := c.Floats()
		if len(values) == 0 {
			p.log.Warn("Skipping column without values", zap.String("column", c.Name))
			continue
		}
		box, err := plotter.NewBoxPlot(vg.Points(40), 0, plotter.Values(values))
		if err != nil {
			p.log.Warn("Skipping column", zap.String("column", c.Name), zap.Error(err))
			continue
		}
		box.FillColor = p.color(len(plots))

		pl := plot.New()
		pl.Title.Text = c.Name
		pl.Add(box)
		pl.HideX()
		plots = append(plots, pl)
	}
	return p.render("outliers.png", plots, outlierColumns)
}
