// SPDX-License-Identifier: MIT

package gaussjordan

import "math"

// DefaultPivotTolerance treats only an exact 0 as a zero pivot.
const DefaultPivotTolerance = 0.0

const panicPivotToleranceInvalid = "gaussjordan: WithPivotTolerance: tol must be finite, non-negative"

// Option mutates solver options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective solver configuration.
type Options struct {
	pivotTol float64 // ≥ 0; |pivot| ≤ pivotTol ⇒ ErrSingular
}

// WithPivotTolerance makes Solve report ErrSingular for any pivot whose
// magnitude does not exceed tol. tol must be finite and ≥ 0.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// gatherOptions applies opts in order over the defaults (last wins).
func gatherOptions(opts ...Option) Options {
	o := Options{pivotTol: DefaultPivotTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
