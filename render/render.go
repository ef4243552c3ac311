// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/lsqfit/polyfit"
	"github.com/katalvlaran/lsqfit/polynomial"
)

var (
	// ErrBadConfig indicates a sampling range, sample count or canvas size
	// that cannot produce a chart.
	ErrBadConfig = errors.New("render: invalid config")

	// ErrUnsupportedFormat indicates an output format gonum/plot cannot encode.
	ErrUnsupportedFormat = errors.New("render: unsupported output format")

	// ErrUnplottable indicates a curve or point with non-finite coordinates.
	ErrUnplottable = errors.New("render: non-finite data")
)

// formats lists the encoders gonum/plot ships with.
var formats = map[string]struct{}{
	"eps": {}, "jpg": {}, "jpeg": {}, "pdf": {}, "png": {},
	"svg": {}, "tex": {}, "tif": {}, "tiff": {},
}

// palette is the curve colour order; later curves fall back to plotutil.
var palette = []color.Color{Green, Red}

// New lays out points and curves on a fresh plot.
//
// Stages:
//
//	Stage 1 (Validate): sampling range, sample count, canvas size.
//	Stage 2 (Curves): sample every polynomial and add a styled line.
//	Stage 3 (Points): scatter overlay of the raw data, if any.
//	Stage 4 (Axes): clamp x to [XMin, XMax] after plotters widened it.
func New(points []polyfit.Point, curves []Curve, cfg Config) (*plot.Plot, error) {
	// Stage 1: Validate
	if err := validate(cfg); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel
	p.Legend.Top = true
	if cfg.Grid {
		p.Add(plotter.NewGrid())
	}

	// Stage 2: Curves
	for i, c := range curves {
		xs, ys, err := polynomial.Sample(c.Poly, cfg.XMin, cfg.XMax, cfg.Samples)
		if err != nil {
			return nil, fmt.Errorf("render: curve %d: %w: %v", i, ErrBadConfig, err)
		}
		xys := make(plotter.XYs, len(xs))
		for k := range xs {
			xys[k].X, xys[k].Y = xs[k], ys[k]
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("render: curve %d (%s): %w: %v", i, c.Label, ErrUnplottable, err)
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = curveColor(i, c.Color)
		if c.Dashed {
			line.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		}
		p.Add(line)
		if c.Label != "" {
			p.Legend.Add(c.Label, line)
		}
	}

	// Stage 3: Points
	if len(points) > 0 {
		xys := make(plotter.XYs, len(points))
		for k, pt := range points {
			xys[k].X, xys[k].Y = pt.X, pt.Y
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("render: points: %w: %v", ErrUnplottable, err)
		}
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = cfg.PointRadius
		if sc.GlyphStyle.Radius <= 0 {
			sc.GlyphStyle.Radius = vg.Points(3)
		}
		sc.GlyphStyle.Color = cfg.PointColor
		if sc.GlyphStyle.Color == nil {
			sc.GlyphStyle.Color = Blue
		}
		p.Add(sc)
		if cfg.PointsLabel != "" {
			p.Legend.Add(cfg.PointsLabel, sc)
		}
	}

	// Stage 4: Axes
	p.X.Min, p.X.Max = cfg.XMin, cfg.XMax

	return p, nil
}

// Save writes p to path; the extension selects the encoder.
func Save(p *plot.Plot, cfg Config, path string) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if _, ok := formats[format]; !ok {
		return fmt.Errorf("render: Save %q: %w", path, ErrUnsupportedFormat)
	}
	if err := p.Save(cfg.Width, cfg.Height, path); err != nil {
		return fmt.Errorf("render: Save %q: %w", path, err)
	}

	return nil
}

// Write encodes p in the given format ("png", "svg", "pdf", ...) to w.
func Write(w io.Writer, p *plot.Plot, cfg Config, format string) error {
	format = strings.ToLower(format)
	if _, ok := formats[format]; !ok {
		return fmt.Errorf("render: Write %q: %w", format, ErrUnsupportedFormat)
	}
	wt, err := p.WriterTo(cfg.Width, cfg.Height, format)
	if err != nil {
		return fmt.Errorf("render: Write %q: %w", format, err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("render: Write %q: %w", format, err)
	}

	return nil
}

func validate(cfg Config) error {
	if cfg.Samples < 2 {
		return fmt.Errorf("render: samples=%d: %w", cfg.Samples, ErrBadConfig)
	}
	if math.IsInf(cfg.XMin, 0) || math.IsInf(cfg.XMax, 0) || !(cfg.XMin < cfg.XMax) {
		return fmt.Errorf("render: x range [%g, %g]: %w", cfg.XMin, cfg.XMax, ErrBadConfig)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("render: canvas %vx%v: %w", cfg.Width, cfg.Height, ErrBadConfig)
	}

	return nil
}

func curveColor(i int, c color.Color) color.Color {
	if c != nil {
		return c
	}
	if i < len(palette) {
		return palette[i]
	}

	return plotutil.Color(i)
}
