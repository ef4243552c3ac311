package polynomial

// Polynomial is a coefficient vector in ascending-power order:
// index i holds the coefficient of x^i.
type Polynomial []float64

// Degree returns len(p)-1, or -1 for the empty polynomial.
func (p Polynomial) Degree() int {
	return len(p) - 1
}

// Clone returns an independent copy of p.
func (p Polynomial) Clone() Polynomial {
	if p == nil {
		return nil
	}

	return append(Polynomial(nil), p...)
}

// Eval returns p(x). See Eval.
func (p Polynomial) Eval(x float64) float64 {
	return Eval(p, x)
}

// EvalAll returns p evaluated at every element of xs. See EvalAll.
func (p Polynomial) EvalAll(xs []float64) []float64 {
	return EvalAll(p, xs)
}

// Eval computes Σ coeffs[i]·x^i, accumulating from the constant term up
// with an incrementally built power of x. The empty vector evaluates to 0.
// NaN and overflow propagate as in plain float arithmetic: a zero
// coefficient times an infinite power is NaN.
// Complexity: O(len(coeffs)).
func Eval(coeffs []float64, x float64) float64 {
	var (
		sum   float64
		power = 1.0 // x^i
	)
	for _, c := range coeffs {
		sum += c * power
		power *= x
	}

	return sum
}

// EvalAll evaluates coeffs at each x and returns a new slice of the same
// length (nil for nil input). xs is not modified.
// Complexity: O(len(xs)·len(coeffs)).
func EvalAll(coeffs []float64, xs []float64) []float64 {
	if xs == nil {
		return nil
	}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = Eval(coeffs, x)
	}

	return ys
}
