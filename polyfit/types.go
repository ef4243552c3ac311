package polyfit

import "fmt"

// Point is one observation (X, Y). Point sets are plain slices and are
// always iterated in slice order.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Points zips parallel coordinate slices into a point set.
// Mismatched lengths yield ErrInvalidInput.
func Points(xs, ys []float64) ([]Point, error) {
	if len(xs) != len(ys) {
		return nil, fitErrorf(opPoints, fmt.Errorf("len(xs)=%d, len(ys)=%d: %w", len(xs), len(ys), ErrInvalidInput))
	}
	pts := make([]Point, len(xs))
	for i := range xs {
		pts[i] = Point{X: xs[i], Y: ys[i]}
	}

	return pts, nil
}

// XY splits points into fresh coordinate slices.
func XY(points []Point) (xs, ys []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}

	return xs, ys
}
