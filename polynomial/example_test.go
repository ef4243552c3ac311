package polynomial_test

import (
	"fmt"

	"github.com/katalvlaran/lsqfit/polynomial"
)

// ExamplePolynomial_Eval evaluates 1 + 2x + 3x² at x = 2.
func ExamplePolynomial_Eval() {
	p := polynomial.Polynomial{1, 2, 3}
	fmt.Println(p.Eval(2))
	// Output:
	// 17
}

// ExampleSample evaluates a line over [0, 5] the way a plot front-end would.
func ExampleSample() {
	xs, ys, err := polynomial.Sample(polynomial.Polynomial{10, -2}, 0, 5, 6)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(xs)
	fmt.Println(ys)
	// Output:
	// [0 1 2 3 4 5]
	// [10 8 6 4 2 0]
}

// ExampleFormat prints a fitted quadratic with three decimals.
func ExampleFormat() {
	p := polynomial.Polynomial{11.502, -3.2289, 0.4143}
	fmt.Println(polynomial.Format(p, polynomial.WithPrecision(3)))
	// Output:
	// y(x) = +11.502 -3.229x +0.414x^{2}
}
