// Package gaussjordan solves the square augmented systems produced by
// polynomial least squares.
//
// 🚀 What does it do?
//
//	Given an n×(n+1) augmented matrix [A | b], Solve returns x with A·x = b
//	using a row-normalising elimination followed by back substitution:
//
//	  for each pivot column i:
//	    1. every row j ≥ i is divided by its own entry in column i,
//	       so column i holds 1 in all of those rows;
//	    2. row i is subtracted from every row j > i, zeroing column i below
//	       the diagonal.
//	  then x is recovered bottom-up from the unit upper-triangular system.
//
// ✨ Key properties:
//   - No pivot selection: rows are never swapped, so results are
//     bit-for-bit reproducible and match the classical normal-equations
//     recipe exactly.
//   - A zero pivot is reported as ErrSingular (an alias of
//     matrix.ErrSingular) instead of dividing by zero; NaN/Inf never leak
//     out of Solve, they surface as matrix.ErrNaNInf.
//   - Rows below the pivot whose column-i entry is already zero are left
//     untouched: they need no elimination for that column.
//
// ⚠️ Numerical caveat:
//
//	Without pivoting, ill-conditioned systems can lose most of their
//	significant digits even when they are technically solvable. Treat
//	ErrSingular and near-singular results as equally unreliable; use
//	WithPivotTolerance to reject tiny pivots.
//
// ⚙️ Usage:
//
//	aug, _ := matrix.NewDenseFromRows([][]float64{{2, 1, 5}, {1, 3, 10}})
//	x, err := gaussjordan.Solve(aug) // x == [1 3]; aug is consumed
//
// Performance:
//
//   - Time:   O(n³)
//   - Memory: O(n) besides the matrix, which is reused in place.
package gaussjordan
