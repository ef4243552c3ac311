// SPDX-License-Identifier: MIT

package polyfit

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lsqfit/matrix"
)

// BuildNormal assembles the augmented normal-equations matrix for fitting a
// polynomial of the given degree to points.
//
// With terms = degree+1 the result is terms×(terms+1):
//
//	row r, col c < terms : S_{r+c} = Σ x^{r+c}
//	row r, col terms     : b_r     = Σ y·x^r
//
// The left block is symmetric (Hankel). Only the 2·terms−1 distinct power
// sums S_0..S_{2d} are computed, one pass over the points with an
// incrementally built power of x.
//
// Stages:
//
//	Stage 1 (Validate): non-empty points, degree ≥ 0, finite coordinates,
//	                    more distinct x values than the degree.
//	Stage 2 (Accumulate): power sums and right-hand side.
//	Stage 3 (Fill): copy the Hankel band into each row.
//	Stage 4 (Finalize): reject overflowed sums under the numeric policy.
//
// A degree at or above the number of distinct x values makes the Hankel
// block rank-deficient, so it is reported as ErrSingular before anything
// is allocated.
//
// Errors: ErrInvalidInput, ErrInvalidDegree, ErrSingular, matrix.ErrNaNInf.
// Complexity: O(N·d) time, O(d²) memory. points is not modified.
func BuildNormal(points []Point, degree int, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)

	return buildNormal(points, degree, o)
}

func buildNormal(points []Point, degree int, o Options) (*matrix.Dense, error) {
	// Stage 1: Validate
	if len(points) == 0 {
		return nil, fitErrorf(opBuildNormal, fmt.Errorf("no points: %w", ErrInvalidInput))
	}
	if degree < 0 {
		return nil, fitErrorf(opBuildNormal, fmt.Errorf("degree %d: %w", degree, ErrInvalidDegree))
	}
	if o.validateNaNInf {
		for i, p := range points {
			if !finite(p.X) || !finite(p.Y) {
				return nil, fitErrorf(opBuildNormal, fmt.Errorf("point %d (%g, %g): %w", i, p.X, p.Y, ErrInvalidInput))
			}
		}
	}
	if distinct := countDistinctX(points, degree); distinct <= degree {
		return nil, fitErrorf(opBuildNormal,
			fmt.Errorf("degree %d with %d distinct x values: %w", degree, distinct, ErrSingular))
	}

	// Stage 2: Accumulate
	terms := degree + 1
	sums := make([]float64, 2*terms-1) // S_0 .. S_{2d}
	rhs := make([]float64, terms)      // b_0 .. b_d
	var (
		k     int
		power float64 // x^k
	)
	for _, p := range points {
		power = 1
		for k = range sums {
			sums[k] += power
			if k < terms {
				rhs[k] += p.Y * power
			}
			power *= p.X
		}
	}

	// Stage 3: Fill
	aug, err := matrix.NewAugmented(terms)
	if err != nil {
		return nil, fitErrorf(opBuildNormal, err)
	}
	for r := 0; r < terms; r++ {
		row, _ := aug.Row(r) // r < terms == aug.Rows()
		copy(row[:terms], sums[r:r+terms])
		row[terms] = rhs[r]
	}

	// Stage 4: Finalize
	if o.validateNaNInf {
		if err = matrix.ValidateFinite(aug); err != nil {
			return nil, fitErrorf(opBuildNormal, fmt.Errorf("power sums overflow at degree %d: %w", degree, err))
		}
	}

	return aug, nil
}

// countDistinctX counts the distinct x values in points, stopping once the
// count exceeds limit.
func countDistinctX(points []Point, limit int) int {
	seen := make(map[float64]struct{}, min(len(points), limit))
	for _, p := range points {
		seen[p.X] = struct{}{}
		if len(seen) > limit {
			break
		}
	}

	return len(seen)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
