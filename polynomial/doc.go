// Package polynomial holds the canonical representation of a fitted
// polynomial and everything that only reads it: evaluation, sampling over
// a range, and human-readable formatting.
//
// A Polynomial is a coefficient vector in ascending-power order:
//
//	Polynomial{c0, c1, c2}  ≡  c0 + c1·x + c2·x²
//
// Evaluation is pure and never fails; NaN and ±Inf propagate according to
// IEEE-754. Sampling and formatting exist for the plotting and reporting
// front-ends and do not feed back into fitting.
package polynomial
