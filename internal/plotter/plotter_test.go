package plotter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/config"
	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/frame"
	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/transforms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func newPlotter(t *testing.T) (*Plotter, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.WarnLevel)
	cfg := config.DefaultPlotConfig()
	cfg.OutputDir = t.TempDir()
	cfg.Width, cfg.Height = 3, 2
	p, err := New(cfg, zap.New(core))
	require.NoError(t, err)
	return p, logs
}

func loanTable() *frame.Table {
	return frame.MustNew(
		frame.NewColumn("loan_amount", frame.Numeric, []any{8000.0, 12000.0, nil, 5000.0, 25000.0, 9000.0}),
		frame.NewColumn("int_rate", frame.Numeric, []any{7.5, 13.2, 11.0, nil, 9.9, 30.1}),
		frame.NewColumn("grade", frame.Categorical, []any{"A", "B", "A", nil, "C", "A"}),
		frame.NewColumn("issue_date", frame.Timestamp, []any{
			time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC),
			nil,
			time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2021, time.April, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2022, time.May, 1, 0, 0, 0, 0, time.UTC),
		}),
	)
}

func assertPNG(t *testing.T, path string) {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(content), len(pngMagic))
	assert.Equal(t, pngMagic, content[:len(pngMagic)])
}

func TestPalette(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"", false},
		{"default", false},
		{"Soft", false},
		{"dark", false},
		{"Set1", false},
		{"YlGnBu", false},
		{"no-such-palette", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			colors, err := Palette(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, colors)
		})
	}
}

func TestNew_UnknownPalette(t *testing.T) {
	_, err := New(config.PlotConfig{Palette: "mauve"}, nil)
	assert.Error(t, err)
}

func TestPlotDistributions(t *testing.T) {
	p, logs := newPlotter(t)
	table := loanTable()
	before := table.Clone()

	path, err := p.PlotDistributions(table, nil)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(p.cfg.OutputDir, "distributions.png"), path)
	assertPNG(t, path)
	assert.Equal(t, before, table)
	assert.Zero(t, logs.Len())
}

func TestPlotDistributions_UnknownColumn(t *testing.T) {
	p, logs := newPlotter(t)

	path, err := p.PlotDistributions(loanTable(), []string{"loan_amount", "no_such_column"})
	require.NoError(t, err)
	assertPNG(t, path)

	skipped := logs.FilterMessage("Skipping unknown column")
	require.Equal(t, 1, skipped.Len())
	assert.Equal(t, "no_such_column", skipped.All()[0].ContextMap()["column"])
}

func TestPlotDistributions_NothingToDraw(t *testing.T) {
	p, _ := newPlotter(t)

	_, err := p.PlotDistributions(loanTable(), []string{"missing"})
	assert.True(t, errors.Is(err, ErrNoData))
}

func TestPlotOutliers(t *testing.T) {
	p, _ := newPlotter(t)
	table := loanTable()
	before := table.Clone()

	path, err := p.PlotOutliers(table)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(p.cfg.OutputDir, "outliers.png"), path)
	assertPNG(t, path)
	assert.Equal(t, before, table)
}

func TestPlotNullPercentage(t *testing.T) {
	p, _ := newPlotter(t)

	path, err := p.PlotNullPercentage(transforms.Nulls(loanTable()))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(p.cfg.OutputDir, "null_percentage.png"), path)
	assertPNG(t, path)
}

func TestPlotNullPercentage_NoNulls(t *testing.T) {
	p, _ := newPlotter(t)
	table := frame.MustNew(frame.NewColumn("id", frame.Numeric, []any{1.0, 2.0}))

	_, err := p.PlotNullPercentage(transforms.Nulls(table))
	assert.ErrorIs(t, err, ErrNoData)
}
