// SPDX-License-Identifier: MIT
// Package: lsqfit/polyfit
//
// errors.go: sentinel errors for the polyfit package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (point index, degree, operation) is attached with %w wrapping.
//   • Nothing is retried: a deterministic direct solve fails the same way twice.

package polyfit

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lsqfit/matrix"
)

// ErrInvalidInput indicates an empty point set, mismatched coordinate
// slices, or (under the default numeric policy) a non-finite coordinate.
var ErrInvalidInput = errors.New("polyfit: invalid input points")

// ErrInvalidDegree indicates a negative polynomial degree.
var ErrInvalidDegree = errors.New("polyfit: invalid degree")

// ErrSingular indicates that the normal equations can not be solved: the
// degree is not below the number of distinct x values (reported by the
// builder), or the solver met a zero pivot. It is the same sentinel as
// matrix.ErrSingular.
var ErrSingular = matrix.ErrSingular

const (
	opBuildNormal = "BuildNormal"
	opFit         = "Fit"
	opFitDegrees  = "FitDegrees"
	opSummarize   = "Summarize"
	opPoints      = "Points"
)

// fitErrorf wraps err with an operation tag, preserving it for errors.Is.
func fitErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
