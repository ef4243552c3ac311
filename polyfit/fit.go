// SPDX-License-Identifier: MIT

package polyfit

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lsqfit/gaussjordan"
	"github.com/katalvlaran/lsqfit/polynomial"
)

// Fit returns the least-squares polynomial of the given degree through
// points, as coefficients in ascending-power order (length degree+1).
//
// The normal matrix is built fresh for this call and consumed by the
// solver; nothing but the returned coefficients outlives it.
//
// Errors: ErrInvalidInput, ErrInvalidDegree, ErrSingular, matrix.ErrNaNInf.
func Fit(points []Point, degree int, opts ...Option) (polynomial.Polynomial, error) {
	o := gatherOptions(opts...)

	aug, err := buildNormal(points, degree, o)
	if err != nil {
		return nil, fitErrorf(opFit, fmt.Errorf("degree %d: %w", degree, err))
	}
	coeffs, err := gaussjordan.Solve(aug, o.solverOptions()...)
	if err != nil {
		return nil, fitErrorf(opFit, fmt.Errorf("degree %d: %w", degree, err))
	}

	return polynomial.Polynomial(coeffs), nil
}

// FitDegrees fits the same points once per requested degree. The fits are
// independent and run concurrently (bounded by WithMaxWorkers); results
// come back in the order of degrees. The first failure cancels the
// remaining fits and is returned wrapped with its degree.
func FitDegrees(ctx context.Context, points []Point, degrees []int, opts ...Option) ([]polynomial.Polynomial, error) {
	o := gatherOptions(opts...)

	out := make([]polynomial.Polynomial, len(degrees))
	g, gctx := errgroup.WithContext(ctx)
	if o.maxWorkers > 0 {
		g.SetLimit(o.maxWorkers)
	}
	for i, d := range degrees {
		i, d := i, d
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := Fit(points, d, opts...)
			if err != nil {
				return err // Fit already names the degree
			}
			out[i] = p

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fitErrorf(opFitDegrees, err)
	}

	return out, nil
}
