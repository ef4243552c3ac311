// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const opResidual = "Residual"

// Residual returns r = A·x − b for an augmented system [A | b], i.e. how far
// a candidate solution x is from satisfying every equation.
//
// Contract: aug is n×(n+1) (ValidateAugmented); len(x) == n.
// Fast-path: *Dense walks each row once with flat indexing.
// Complexity: Time O(n²), Space O(n) for r.
func Residual(aug Matrix, x []float64) ([]float64, error) {
	if err := ValidateAugmented(aug); err != nil {
		return nil, fmt.Errorf("%s: %w", opResidual, err)
	}
	n := aug.Rows()
	if err := ValidateVecLen(x, n); err != nil {
		return nil, fmt.Errorf("%s: %w", opResidual, err)
	}

	r := make([]float64, n)
	var (
		i, j int
		acc  float64
	)
	if d, ok := aug.(*Dense); ok {
		var base int
		for i = 0; i < n; i++ {
			base = i * d.c
			acc = 0
			for j = 0; j < n; j++ {
				acc += d.data[base+j] * x[j]
			}
			r[i] = acc - d.data[base+n]
		}

		return r, nil
	}

	var v float64
	for i = 0; i < n; i++ {
		acc = 0
		for j = 0; j < n; j++ {
			v, _ = aug.At(i, j) // shape validated above
			acc += v * x[j]
		}
		v, _ = aug.At(i, n)
		r[i] = acc - v
	}

	return r, nil
}
