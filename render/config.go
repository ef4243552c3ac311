// SPDX-License-Identifier: MIT

package render

import (
	"image/color"
	"strconv"

	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lsqfit/polynomial"
)

// Defaults (single source of truth).
const (
	DefaultXMin    = 0.0
	DefaultXMax    = 5.0
	DefaultSamples = 1000
	DefaultXLabel  = "x-axis"
	DefaultYLabel  = "y-axis"
	DefaultWidth   = 6 * vg.Inch
	DefaultHeight  = 4 * vg.Inch

	// DefaultPointsLabel names the scatter overlay in the legend.
	DefaultPointsLabel = "data"
)

// Palette used for curves without an explicit colour, in curve order.
var (
	Green = color.RGBA{G: 128, A: 255}
	Red   = color.RGBA{R: 220, A: 255}
	Blue  = color.RGBA{B: 255, A: 255}
)

// Curve is one polynomial to draw.
type Curve struct {
	Label  string
	Poly   polynomial.Polynomial
	Color  color.Color // nil: picked from the palette by position
	Dashed bool
}

// Config controls layout and sampling. Use DefaultConfig and override fields.
type Config struct {
	Title       string
	XLabel      string
	YLabel      string
	XMin, XMax  float64
	Samples     int
	Grid        bool
	Width       vg.Length
	Height      vg.Length
	PointsLabel string
	PointColor  color.Color
	PointRadius vg.Length
}

// DefaultConfig returns the classic layout.
func DefaultConfig() Config {
	return Config{
		XLabel:      DefaultXLabel,
		YLabel:      DefaultYLabel,
		XMin:        DefaultXMin,
		XMax:        DefaultXMax,
		Samples:     DefaultSamples,
		Grid:        true,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		PointsLabel: DefaultPointsLabel,
		PointColor:  Blue,
		PointRadius: vg.Points(3),
	}
}

// DefaultCurves labels fits the way the classic chart does: the first is
// a solid line, the second dashed, later ones alternate.
func DefaultCurves(polys ...polynomial.Polynomial) []Curve {
	curves := make([]Curve, len(polys))
	for i, p := range polys {
		curves[i] = Curve{
			Label:  curveLabel(p),
			Poly:   p,
			Dashed: i%2 == 1,
		}
	}

	return curves
}

func curveLabel(p polynomial.Polynomial) string {
	switch p.Degree() {
	case 0:
		return "constant"
	case 1:
		return "linear"
	case 2:
		return "quadratic"
	case 3:
		return "cubic"
	default:
		return "degree " + strconv.Itoa(p.Degree())
	}
}
