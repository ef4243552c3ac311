package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lsqfit/internal/config"
	"github.com/katalvlaran/lsqfit/polyfit"
	"github.com/katalvlaran/lsqfit/polynomial"
)

func fitCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit polynomials of the given degrees and print them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.resolve(cmd)
			if err != nil {
				return err
			}
			pts, err := a.points(cfg)
			if err != nil {
				return err
			}
			fits, err := a.fit(cmd.Context(), cfg, pts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range fits {
				fmt.Fprintf(out, "degree %d: %s\n", p.Degree(), polynomial.Format(p, polynomial.WithPrecision(cfg.Precision)))
				if !cfg.Stats {
					continue
				}
				s, err := polyfit.Summarize(pts, p)
				if err != nil {
					return err
				}
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err = enc.Encode(s); err != nil {
					return fmt.Errorf("fit: stats: %w", err)
				}
				if err = enc.Close(); err != nil {
					return fmt.Errorf("fit: stats: %w", err)
				}
			}

			return nil
		},
	}
	config.RegisterFitFlags(cmd.Flags())
	config.RegisterOutputFlags(cmd.Flags())

	return cmd
}
