package gaussjordan_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lsqfit/gaussjordan"
	"github.com/katalvlaran/lsqfit/matrix"
)

// ExampleSolve solves 2x + y = 5, x + 3y = 10.
func ExampleSolve() {
	aug, _ := matrix.NewDenseFromRows([][]float64{
		{2, 1, 5},
		{1, 3, 10},
	})
	x, err := gaussjordan.Solve(aug)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(x)
	// Output:
	// [1 3]
}

// ExampleSolve_singular shows how a dependent system is reported.
func ExampleSolve_singular() {
	aug, _ := matrix.NewDenseFromRows([][]float64{
		{1, 2, 3},
		{2, 4, 6},
	})
	_, err := gaussjordan.Solve(aug)
	fmt.Println(errors.Is(err, gaussjordan.ErrSingular))
	fmt.Println(err)
	// Output:
	// true
	// Solve: zero pivot at 1: matrix: singular matrix
}
