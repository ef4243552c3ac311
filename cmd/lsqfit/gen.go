package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lsqfit/internal/dataset"
	"github.com/katalvlaran/lsqfit/polyfit"
	"github.com/katalvlaran/lsqfit/polynomial"
)

func genCmd(a *app) *cobra.Command {
	var (
		coeffs  []float64
		n       int
		lo, hi  float64
		sigma   float64
		seed    int64
		outPath string
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a noisy sample of a polynomial as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(coeffs) == 0 {
				return errors.New("gen: --coeff is required")
			}
			xs, err := polynomial.Linspace(lo, hi, n)
			if err != nil {
				return fmt.Errorf("gen: %w", err)
			}
			pts, err := dataset.Synthetic(polynomial.Polynomial(coeffs), xs, seed, sigma)
			if err != nil {
				return fmt.Errorf("gen: %w", err)
			}

			if outPath == "" {
				err = dataset.WriteCSV(cmd.OutOrStdout(), pts)
			} else {
				err = writeFile(outPath, pts)
			}
			if err != nil {
				return err
			}
			a.log.Debug().Int("points", len(pts)).Int64("seed", seed).Float64("sigma", sigma).Msg("generated")

			return nil
		},
	}
	fs := cmd.Flags()
	fs.Float64SliceVarP(&coeffs, "coeff", "c", nil, "coefficients in ascending power order")
	fs.IntVar(&n, "n", 20, "number of points")
	fs.Float64Var(&lo, "min", 0, "first x")
	fs.Float64Var(&hi, "max", 5, "last x")
	fs.Float64Var(&sigma, "sigma", 0.1, "standard deviation of the Gaussian noise")
	fs.Int64Var(&seed, "seed", 1, "random seed")
	fs.StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	return cmd
}

// writeFile writes pts as CSV to path. A failed Close is returned like any
// other write error.
func writeFile(path string, pts []polyfit.Point) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gen: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("gen: close %s: %w", path, cerr)
		}
	}()

	return dataset.WriteCSV(f, pts)
}
