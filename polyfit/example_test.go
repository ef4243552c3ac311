package polyfit_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lsqfit/polyfit"
	"github.com/katalvlaran/lsqfit/polynomial"
)

// ExampleFit fits a straight line and a parabola to five measurements.
func ExampleFit() {
	pts := []polyfit.Point{
		{X: 0.5, Y: 10.01},
		{X: 1.0, Y: 8.71},
		{X: 1.5, Y: 7.41},
		{X: 2.0, Y: 6.92},
		{X: 2.5, Y: 5.94},
	}

	line, err := polyfit.Fit(pts, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	quad, err := polyfit.Fit(pts, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(polynomial.Format(line, polynomial.WithPrecision(3)))
	fmt.Println(polynomial.Format(quad, polynomial.WithPrecision(3)))
	// Output:
	// y(x) = +10.777 -1.986x
	// y(x) = +11.502 -3.229x +0.414x^{2}
}

// ExampleFit_singular shows the failure for repeated x values.
func ExampleFit_singular() {
	pts := []polyfit.Point{{X: 1, Y: 2}, {X: 1, Y: 3}}
	_, err := polyfit.Fit(pts, 1)
	fmt.Println(errors.Is(err, polyfit.ErrSingular))
	// Output:
	// true
}

// ExampleFitDegrees fits several degrees of the same data concurrently.
func ExampleFitDegrees() {
	pts := []polyfit.Point{{X: 0, Y: 1}, {X: 1, Y: 3}, {X: 2, Y: 7}}
	fits, err := polyfit.FitDegrees(context.Background(), pts, []int{0, 2})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, p := range fits {
		fmt.Println(polynomial.Format(p, polynomial.WithPrecision(2)))
	}
	// Output:
	// y(x) = +3.67
	// y(x) = +1.00 +1.00x +1.00x^{2}
}
