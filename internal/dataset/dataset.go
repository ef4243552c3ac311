// Package dataset loads and generates point sets for the lsqfit CLI.
//
// Supported inputs, chosen by file extension:
//
//	.csv          two numeric columns (x, y); a non-numeric first row is a
//	              header; lines starting with '#' are comments
//	.yaml, .yml   either `points: [{x: 1, y: 2}, ...]` or a bare list; each
//	.json         entry is a {x, y} mapping or an [x, y] pair
//
// JSON is read through the YAML decoder, which accepts it as a subset.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lsqfit/polyfit"
	"github.com/katalvlaran/lsqfit/polynomial"
)

var (
	// ErrUnsupportedFormat indicates a file extension with no decoder.
	ErrUnsupportedFormat = errors.New("dataset: unsupported format")

	// ErrMalformed indicates a file that could not be decoded into points.
	ErrMalformed = errors.New("dataset: malformed data")
)

// Format names a decoder.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatOf maps a path's extension to a Format.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("dataset: %q: %w", path, ErrUnsupportedFormat)
	}
}

// Load reads the point set stored at path.
func Load(path string) ([]polyfit.Point, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	pts, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return pts, nil
}

// Decode reads a point set in the given format. An input without any
// point is malformed.
func Decode(r io.Reader, format Format) ([]polyfit.Point, error) {
	var (
		pts []polyfit.Point
		err error
	)
	switch format {
	case FormatCSV:
		pts, err = decodeCSV(r)
	case FormatYAML, FormatJSON:
		pts, err = decodeYAML(r)
	default:
		return nil, fmt.Errorf("dataset: format %q: %w", format, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, err
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("dataset: no points: %w", ErrMalformed)
	}

	return pts, nil
}

// Demo returns the five-point set the tool falls back to without --data.
func Demo() []polyfit.Point {
	return []polyfit.Point{
		{X: 0.5, Y: 10.01},
		{X: 1.0, Y: 8.71},
		{X: 1.5, Y: 7.41},
		{X: 2.0, Y: 6.92},
		{X: 2.5, Y: 5.94},
	}
}

// Synthetic samples p at xs and adds N(0, sigma²) noise drawn from a
// generator seeded with seed; the same arguments always give the same set.
func Synthetic(p polynomial.Polynomial, xs []float64, seed int64, sigma float64) ([]polyfit.Point, error) {
	if !(sigma >= 0) {
		return nil, fmt.Errorf("dataset: sigma=%g: %w", sigma, polyfit.ErrInvalidInput)
	}
	rng := rand.New(rand.NewSource(seed))
	ys := p.EvalAll(xs)
	for i := range ys {
		if sigma > 0 {
			ys[i] += sigma * rng.NormFloat64()
		}
	}

	return polyfit.Points(xs, ys)
}
