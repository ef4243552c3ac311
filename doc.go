// Package lsqfit fits polynomials to measured points by least squares.
//
// 🚀 What is lsqfit?
//
//	A small, deterministic toolkit around the classical normal equations:
//		• polyfit/     : build the normal equations and fit one or many degrees
//		• gaussjordan/ : no-pivot Gauss–Jordan solver for augmented systems
//		• polynomial/  : coefficient vectors: evaluate, sample, format
//		• matrix/      : row-major dense storage and shape/finite validators
//		• render/      : draw fitted curves over the data with gonum/plot
//		• cmd/lsqfit   : CLI: fit, eval, plot, gen
//
// ✨ Why choose lsqfit?
//
//   - Reproducible – no pivoting, no randomness, bit-identical results
//   - Honest errors – singular systems and overflow are sentinel errors,
//     never NaN coefficients
//   - Plain data – a fit is a []float64 in ascending-power order
//
// Quick example:
//
//	pts := []polyfit.Point{{X: 0.5, Y: 10.01}, {X: 1, Y: 8.71}, {X: 1.5, Y: 7.41}}
//	p, err := polyfit.Fit(pts, 1)
//	// p ≈ {11.31, -2.6}; p.Eval(2) predicts y at x = 2
//	fmt.Println(polynomial.Format(p, polynomial.WithPrecision(2))) // y(x) = +11.31 -2.60x
//
// Normal equations square the condition number of the underlying
// Vandermonde system; keep degrees low or x ranges small.
//
//	go get github.com/katalvlaran/lsqfit
package lsqfit
