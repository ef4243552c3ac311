package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lsqfit/internal/config"
	"github.com/katalvlaran/lsqfit/internal/dataset"
	"github.com/katalvlaran/lsqfit/polyfit"
	"github.com/katalvlaran/lsqfit/polynomial"
)

// app carries what every command shares: the environment lookup and the
// logger, which writes human-readable lines to stderr.
type app struct {
	lookup config.LookupFunc
	log    zerolog.Logger
}

func newApp(stderr io.Writer, lookup config.LookupFunc) *app {
	out := zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen}

	return &app{
		lookup: lookup,
		log:    zerolog.New(out).With().Timestamp().Logger().Level(zerolog.InfoLevel),
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "lsqfit",
		Short:         "Polynomial least-squares fitting",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.String(config.FlagConfig, "", "YAML config file")
	pf.String(config.FlagLogLevel, config.Default().LogLevel, "trace, debug, info, warn, error")

	root.AddCommand(fitCmd(a), evalCmd(a), plotCmd(a), genCmd(a))

	return root
}

// resolve layers the config for cmd and applies its log level.
func (a *app) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Resolve(cmd.Flags(), a.lookup)
	if err != nil {
		return config.Config{}, err
	}
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return config.Config{}, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	a.log = a.log.Level(lvl)
	a.log.Debug().Interface("config", cfg).Msg("config resolved")

	return cfg, nil
}

// points loads cfg.Data, or the demo set when no file is configured.
func (a *app) points(cfg config.Config) ([]polyfit.Point, error) {
	if cfg.Data == "" {
		a.log.Debug().Msg("no data file, using the demo set")

		return dataset.Demo(), nil
	}
	pts, err := dataset.Load(cfg.Data)
	if err != nil {
		return nil, err
	}
	a.log.Debug().Str("file", cfg.Data).Int("points", len(pts)).Msg("data loaded")

	return pts, nil
}

// fit runs every configured degree over pts.
func (a *app) fit(ctx context.Context, cfg config.Config, pts []polyfit.Point) ([]polynomial.Polynomial, error) {
	start := time.Now()
	fits, err := polyfit.FitDegrees(ctx, pts, cfg.Degrees,
		polyfit.WithValidateNaNInf(cfg.ValidateNaNInf),
		polyfit.WithPivotTolerance(cfg.PivotTolerance),
		polyfit.WithMaxWorkers(cfg.Workers),
	)
	if err != nil {
		return nil, err
	}
	a.log.Info().
		Ints("degrees", cfg.Degrees).
		Int("points", len(pts)).
		Dur("took", time.Since(start)).
		Msg("fitted")

	return fits, nil
}
