// SPDX-License-Identifier: MIT

// Package polyfit: functional configuration for building and solving.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option changes behavior and is covered by tests.
//   - Safe by construction: WithX panics only on nonsensical values.
package polyfit

import (
	"math"

	"github.com/katalvlaran/lsqfit/gaussjordan"
)

// Defaults (single source of truth).
const (
	// DefaultValidateNaNInf rejects non-finite coordinates and overflowing power sums.
	DefaultValidateNaNInf = true

	// DefaultPivotTolerance matches gaussjordan: only an exact zero pivot is singular.
	DefaultPivotTolerance = gaussjordan.DefaultPivotTolerance

	// DefaultMaxWorkers leaves FitDegrees concurrency unbounded.
	DefaultMaxWorkers = 0
)

const (
	panicPivotToleranceInvalid = "polyfit: WithPivotTolerance: tol must be finite, non-negative"
	panicMaxWorkersInvalid     = "polyfit: WithMaxWorkers: n must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool
	pivotTol       float64
	maxWorkers     int
}

// WithValidateNaNInf toggles the finite-value policy of BuildNormal.
// When disabled, NaN/Inf coordinates flow into the matrix and the solver
// reports them as matrix.ErrNaNInf instead.
func WithValidateNaNInf(on bool) Option {
	return func(o *Options) { o.validateNaNInf = on }
}

// WithPivotTolerance forwards a pivot tolerance to gaussjordan.Solve.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithMaxWorkers bounds the number of concurrent fits in FitDegrees;
// 0 means one goroutine per degree.
func WithMaxWorkers(n int) Option {
	if n < 0 {
		panic(panicMaxWorkersInvalid)
	}

	return func(o *Options) { o.maxWorkers = n }
}

// gatherOptions applies opts over the defaults in order (last wins).
func gatherOptions(opts ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		pivotTol:       DefaultPivotTolerance,
		maxWorkers:     DefaultMaxWorkers,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// solverOptions translates the resolved options for gaussjordan.
func (o Options) solverOptions() []gaussjordan.Option {
	return []gaussjordan.Option{gaussjordan.WithPivotTolerance(o.pivotTol)}
}
