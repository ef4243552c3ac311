// SPDX-License-Identifier: MIT

package gaussjordan

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lsqfit/matrix"
)

// ErrSingular is returned when elimination meets a zero pivot.
// It is the same sentinel as matrix.ErrSingular.
var ErrSingular = matrix.ErrSingular

const (
	opSolve     = "Solve"
	opSolveCopy = "SolveCopy"
)

// solveErrorf wraps err with an operation tag, preserving it for errors.Is.
func solveErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Solve solves the augmented system aug = [A | b] in place and returns x.
//
// aug must be n×(n+1) with n ≥ 1 and finite entries. It is consumed: on
// return (successful or not) its contents are the partially or fully
// eliminated system. Use SolveCopy to keep the input.
//
// Stages:
//
//	Stage 1 (Validate): shape and finiteness of aug.
//	Stage 2 (Eliminate): for i = 0..n-1 normalise rows j ≥ i by their own
//	                     column-i entry, then subtract row i from rows j > i.
//	Stage 3 (Back-substitute): x[k] = aug[k][n]; for i = n-2..0 and
//	                           j = i+1..n-1, x[i] -= x[j]*aug[i][j].
//	Stage 4 (Finalize): reject non-finite results.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNaNInf,
// ErrSingular (wrapped with the pivot index).
//
// Complexity: O(n³) time, O(n) extra memory.
func Solve(aug *matrix.Dense, opts ...Option) ([]float64, error) {
	// Stage 1: Validate
	if err := matrix.ValidateAugmented(aug); err != nil {
		return nil, solveErrorf(opSolve, err)
	}
	if err := matrix.ValidateFinite(aug); err != nil {
		return nil, solveErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)

	n := aug.Rows()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i], _ = aug.Row(i) // in range by construction
	}

	// Stage 2: Eliminate
	var (
		i, j, k int
		c       float64 // row's own entry in the pivot column
	)
	for i = 0; i < n; i++ {
		if math.Abs(rows[i][i]) <= o.pivotTol {
			return nil, solveErrorf(opSolve, fmt.Errorf("zero pivot at %d: %w", i, ErrSingular))
		}
		for j = i; j < n; j++ {
			c = rows[j][i]
			if c == 0 { // j > i here: nothing to eliminate in this row
				continue
			}
			for k = i; k <= n; k++ {
				rows[j][k] /= c
			}
		}
		for j = i + 1; j < n; j++ {
			if rows[j][i] == 0 {
				continue
			}
			for k = i; k <= n; k++ {
				rows[j][k] -= rows[i][k]
			}
		}
	}

	// Stage 3: Back-substitute
	answer := make([]float64, n)
	for k = 0; k < n; k++ {
		answer[k] = rows[k][n]
	}
	for i = n - 2; i >= 0; i-- {
		for j = i + 1; j < n; j++ {
			answer[i] -= answer[j] * rows[i][j]
		}
	}

	// Stage 4: Finalize
	for k = 0; k < n; k++ {
		if math.IsNaN(answer[k]) || math.IsInf(answer[k], 0) {
			return nil, solveErrorf(opSolve, fmt.Errorf("x[%d]: %w", k, matrix.ErrNaNInf))
		}
	}

	return answer, nil
}

// SolveCopy is Solve on a private copy of m; m itself is never modified.
// Any Matrix implementation is accepted.
func SolveCopy(m matrix.Matrix, opts ...Option) ([]float64, error) {
	if err := matrix.ValidateAugmented(m); err != nil {
		return nil, solveErrorf(opSolveCopy, err)
	}

	var work *matrix.Dense
	if d, ok := m.(*matrix.Dense); ok {
		work = d.CloneDense()
	} else {
		var err error
		if work, err = matrix.NewAugmented(m.Rows()); err != nil {
			return nil, solveErrorf(opSolveCopy, err)
		}
		var v float64
		for i := 0; i < m.Rows(); i++ {
			for j := 0; j < m.Cols(); j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, solveErrorf(opSolveCopy, err)
				}
				_ = work.Set(i, j, v)
			}
		}
	}

	return Solve(work, opts...)
}
