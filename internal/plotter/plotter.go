/*
 * Copyright 2025 Google LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
// Package plotter renders the exploratory charts of the loan table to PNG files.
package plotter

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/config"
)

// ErrNoData is returned when none of the requested columns can be drawn.
var ErrNoData = errors.New("no plottable columns")

// Plotter draws charts of a table without modifying it.
type Plotter struct {
	cfg    config.PlotConfig
	colors []color.Color
	log    *zap.Logger
}

// New resolves the configured palette up front so a bad name fails before any drawing.
func New(cfg config.PlotConfig, log *zap.Logger) (*Plotter, error) {
	if log == nil {
		log = zap.NewNop()
	}
	defaults := config.DefaultPlotConfig()
	if cfg.Width <= 0 {
		cfg.Width = defaults.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = defaults.Height
	}
	if cfg.Bins <= 0 {
		cfg.Bins = defaults.Bins
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = defaults.OutputDir
	}
	colors, err := Palette(cfg.Palette)
	if err != nil {
		return nil, err
	}
	return &Plotter{cfg: cfg, colors: colors, log: log}, nil
}

// Palette returns the colors of a named palette: "default", "soft", "dark", or a ColorBrewer name such as "Set1" or "YlGnBu".
func Palette(name string) ([]color.Color, error) {
	switch strings.ToLower(name) {
	case "", "default":
		return plotutil.DefaultColors, nil
	case "soft":
		return plotutil.SoftColors, nil
	case "dark":
		return plotutil.DarkColors, nil
	}
	// Brewer palettes come in fixed sizes; take the largest one defined.
	for n := 12; n >= 3; n-- {
		p, err := brewer.GetPalette(brewer.TypeAny, name, n)
		if err == nil {
			return p.Colors(), nil
		}
	}
	return nil, fmt.Errorf("unknown palette %q", name)
}

func (p *Plotter) color(i int) color.Color {
	return p.colors[i%len(p.colors)]
}

func blank() *plot.Plot {
	pl := plot.New()
	pl.HideAxes()
	return pl
}

// render lays plots out on a grid with the given number of columns and writes a PNG to the output directory.
func (p *Plotter) render(name string, plots []*plot.Plot, cols int) (string, error) {
	if len(plots) == 0 {
		return "", ErrNoData
	}
	if len(plots) < cols {
		cols = len(plots)
	}
	rows := (len(plots) + cols - 1) / cols

	grid := make([][]*plot.Plot, rows)
	for r := range grid {
		grid[r] = make([]*plot.Plot, cols)
		for c := range grid[r] {
			if i := r*cols + c; i < len(plots) {
				grid[r][c] = plots[i]
			} else {
				grid[r][c] = blank()
			}
		}
	}

	width := vg.Length(p.cfg.Width*float64(cols)) * vg.Inch
	height := vg.Length(p.cfg.Height*float64(rows)) * vg.Inch
	img := vgimg.New(width, height)
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align(grid, tiles, dc)
	for r := range grid {
		for c := range grid[r] {
			grid[r][c].Draw(canvases[r][c])
		}
	}

	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create plot directory: %w", err)
	}
	path := filepath.Join(p.cfg.OutputDir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}
	p.log.Info("Wrote plot", zap.String("path", path), zap.Int("tiles", len(plots)))
	return path, nil
}
