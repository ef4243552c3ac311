package main

import (
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lsqfit/internal/config"
	"github.com/katalvlaran/lsqfit/render"
)

func plotCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Fit and draw the curves over the data",
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

			rc := renderConfig(cfg.Plot)
			p, err := render.New(pts, render.DefaultCurves(fits...), rc)
			if err != nil {
				return err
			}
			if err = render.Save(p, rc, cfg.Plot.Out); err != nil {
				return err
			}
			a.log.Info().Str("out", cfg.Plot.Out).Int("curves", len(fits)).Msg("plot written")

			return nil
		},
	}
	config.RegisterFitFlags(cmd.Flags())
	config.RegisterPlotFlags(cmd.Flags())

	return cmd
}

func renderConfig(pc config.PlotConf) render.Config {
	rc := render.DefaultConfig()
	rc.Title = pc.Title
	rc.XMin, rc.XMax = pc.XMin, pc.XMax
	rc.Samples = pc.Samples
	rc.Width = vg.Length(pc.Width) * vg.Inch
	rc.Height = vg.Length(pc.Height) * vg.Inch

	return rc
}
