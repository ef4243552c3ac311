package polynomial

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadRange is returned for sampling requests with fewer than two
// samples, a non-finite bound, or hi < lo.
var ErrBadRange = errors.New("polynomial: invalid sampling range")

// minSamples is the smallest sample count that spans both bounds.
const minSamples = 2

// Linspace returns n evenly spaced values from lo to hi inclusive.
// The last element is exactly hi.
func Linspace(lo, hi float64, n int) ([]float64, error) {
	if n < minSamples {
		return nil, fmt.Errorf("Linspace: n=%d: %w", n, ErrBadRange)
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || hi < lo {
		return nil, fmt.Errorf("Linspace: [%g, %g]: %w", lo, hi, ErrBadRange)
	}

	xs := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := 0; i < n-1; i++ {
		xs[i] = lo + float64(i)*step
	}
	xs[n-1] = hi

	return xs, nil
}

// Sample evaluates p at n evenly spaced points of [lo, hi] and returns
// the abscissae together with p's values there.
func Sample(p Polynomial, lo, hi float64, n int) (xs, ys []float64, err error) {
	xs, err = Linspace(lo, hi, n)
	if err != nil {
		return nil, nil, fmt.Errorf("Sample: %w", err)
	}

	return xs, EvalAll(p, xs), nil
}
