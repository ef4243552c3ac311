package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lsqfit/polynomial"
)

func evalCmd(a *app) *cobra.Command {
	var coeffs []float64
	cmd := &cobra.Command{
		Use:   "eval --coeff c0,c1,... x...",
		Short: "Evaluate a polynomial at each x",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(coeffs) == 0 {
				return errors.New("eval: --coeff is required")
			}
			xs := make([]float64, len(args))
			for i, s := range args {
				x, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return fmt.Errorf("eval: x %q: %w", s, err)
				}
				xs[i] = x
			}

			p := polynomial.Polynomial(coeffs)
			a.log.Debug().Str("polynomial", p.String()).Int("xs", len(xs)).Msg("evaluating")
			out := cmd.OutOrStdout()
			for i, y := range p.EvalAll(xs) {
				fmt.Fprintf(out, "%s\t%s\n",
					strconv.FormatFloat(xs[i], 'g', -1, 64),
					strconv.FormatFloat(y, 'g', -1, 64))
			}

			return nil
		},
	}
	cmd.Flags().Float64SliceVarP(&coeffs, "coeff", "c", nil, "coefficients in ascending power order")

	return cmd
}
