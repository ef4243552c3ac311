// Package polyfit fits polynomials to 2-D points by least squares.
//
// 🚀 What is a least-squares polynomial fit?
//
//	Given points (x_k, y_k) and a degree d, find c0..cd minimising
//	Σ (y_k − Σ c_i·x_k^i)². Setting the gradient to zero yields the normal
//	equations, a (d+1)×(d+1) symmetric system whose entries are power sums:
//
//	  [ S0   S1   …  Sd   | b0 ]      S_k = Σ x^k
//	  [ S1   S2   …  Sd+1 | b1 ]      b_j = Σ y·x^j
//	  [ …                 | …  ]
//	  [ Sd   Sd+1 …  S2d  | bd ]
//
//	BuildNormal assembles that augmented matrix, gaussjordan.Solve reduces
//	it, and the solution is the coefficient vector in ascending-power order.
//
// ✨ Key features:
//   - Fit: build + solve in one call, returning a polynomial.Polynomial.
//   - FitDegrees: several independent fits of the same data run
//     concurrently, results in the caller's order.
//   - Summarize: residuals, SSE, RMSE and R² of a fit.
//   - Explicit failures instead of NaN: ErrInvalidInput, ErrInvalidDegree,
//     ErrSingular, matrix.ErrNaNInf.
//
// ⚠️ Conditioning:
//
//	Power sums grow like max|x|^(2d). For high degrees or widely spread x the
//	normal matrix becomes ill-conditioned and the non-pivoting solver loses
//	precision; overflowing sums are reported as matrix.ErrNaNInf. Nothing is
//	rescaled or corrected behind the caller's back. Duplicate x values, or a
//	degree at or above the number of distinct x values, make the system
//	singular.
//
// ⚙️ Usage:
//
//	pts := []polyfit.Point{{X: 0.5, Y: 10.01}, {X: 1, Y: 8.71}, {X: 1.5, Y: 7.41}}
//	line, err := polyfit.Fit(pts, 1)
//	if err != nil {
//	  // errors.Is(err, polyfit.ErrSingular) etc.
//	}
//	fmt.Println(line.Eval(2))
//
// Performance:
//
//   - Build: O(N·d) time, O(d²) memory.
//   - Solve: O(d³) time.
package polyfit
