package plotter

import (
	"sort"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/frame"
)

const (
	distributionColumns = 2
	// maxLevels caps the bars drawn for a categorical or text column.
	maxLevels = 30
)

// PlotDistributions draws one histogram per column on a two-column grid, all columns when none are named.
// Numeric columns are binned, timestamps are binned on Unix time, other kinds get one bar per level.
// Unknown names are logged and skipped.
func (p *Plotter) PlotDistributions(t *frame.Table, columns []string) (string, error) {
	if len(columns) == 0 {
		columns = t.Names()
	}

	var plots []*plot.Plot
	for _, name := range columns {
		c := t.Column(name)
		if c == nil {
			p.log.Warn("Skipping unknown column", zap.String("column", name))
			continue
		}
		pl, err := p.distribution(c, len(plots))
		if err != nil {
			p.log.Warn("Skipping column", zap.String("column", name), zap.Error(err))
			continue
		}
		if pl == nil {
			p.log.Warn("Skipping column without values", zap.String("column", name))
			continue
		}
		plots = append(plots, pl)
	}
	return p.render("distributions.png", plots, distributionColumns)
}

func (p *Plotter) distribution(c *frame.Column, i int) (*plot.Plot, error) {
	switch c.Kind {
	case frame.Numeric:
		return p.histogram(c.Name, c.Floats(), i)
	case frame.Timestamp:
		var values []float64
		for _, v := range c.Values {
			if ts, ok := v.(time.Time); ok {
				values = append(values, float64(ts.Unix()))
			}
		}
		pl, err := p.histogram(c.Name, values, i)
		if pl != nil {
			pl.X.Tick.Marker = plot.TimeTicks{Format: "2006-01"}
		}
		return pl, err
	default:
		return p.frequencies(c, i)
	}
}

func (p *Plotter) histogram(name string, values []float64, i int) (*plot.Plot, error) {
	if len(values) == 0 {
		return nil, nil
	}
	h, err := plotter.NewHist(plotter.Values(values), p.cfg.Bins)
	if err != nil {
		return nil, err
	}
	h.FillColor = p.color(i)

	pl := plot.New()
	pl.Title.Text = name
	pl.Y.Label.Text = "count"
	pl.Add(h)
	return pl, nil
}

// frequencies draws the most frequent levels of a column as vertical bars.
func (p *Plotter) frequencies(c *frame.Column, i int) (*plot.Plot, error) {
	counts := make(map[string]int)
	for _, v := range c.Values {
		if v != nil {
			counts[frame.FormatCell(v)]++
		}
	}
	if len(counts) == 0 {
		return nil, nil
	}
	levels := c.Levels()
	sort.SliceStable(levels, func(a, b int) bool { return counts[levels[a]] > counts[levels[b]] })
	if len(levels) > maxLevels {
		levels = levels[:maxLevels]
	}

	values := make(plotter.Values, len(levels))
	for j, level := range levels {
		values[j] = float64(counts[level])
	}
	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return nil, err
	}
	bars.Color = p.color(i)
	bars.LineStyle.Width = 0

	pl := plot.New()
	pl.Title.Text = c.Name
	pl.Y.Label.Text = "count"
	pl.Add(bars)
	pl.NominalX(levels...)
	return pl, nil
}
