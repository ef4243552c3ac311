// Package matrix provides the owned numeric buffer that the lsqfit solvers
// operate on.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set, a
//     row view for tight inner loops and a deep Clone.
//   - NewAugmented for the n×(n+1) layout of a linear system with its
//     right-hand side stored in the last column.
//   - Validators (ValidateAugmented, ValidateFinite, ValidateVecLen, ...)
//     that return the package sentinels so every caller reports shape and
//     numeric-policy failures the same way.
//   - Residual, A·x − b for an augmented system, to check a solution.
//
// A Dense handed to a solver is owned by that solver for the duration of
// the call: solvers mutate it in place. Clone first if the original must
// survive.
//
// This is deliberately not a general linear-algebra package; it carries only
// what polynomial least squares needs.
package matrix
