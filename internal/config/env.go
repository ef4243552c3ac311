package config

import (
	"fmt"
	"strconv"
)

// EnvPrefix starts every environment override.
const EnvPrefix = "LSQFIT_"

// Environment variable names.
const (
	EnvData           = EnvPrefix + "DATA"
	EnvDegrees        = EnvPrefix + "DEGREES" // "1,2,3"
	EnvPrecision      = EnvPrefix + "PRECISION"
	EnvStats          = EnvPrefix + "STATS"
	EnvValidateNaNInf = EnvPrefix + "VALIDATE_NAN_INF"
	EnvPivotTolerance = EnvPrefix + "PIVOT_TOLERANCE"
	EnvWorkers        = EnvPrefix + "WORKERS"
	EnvLogLevel       = EnvPrefix + "LOG_LEVEL"
	EnvPlotOut        = EnvPrefix + "PLOT_OUT"
	EnvPlotSamples    = EnvPrefix + "PLOT_SAMPLES"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides cfg with every LSQFIT_* variable lookup reports.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup(key)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", key, v, err)
		}
		*dst = n

		return nil
	}
	flag := func(key string, dst *bool) error {
		v, ok := lookup(key)
		if !ok {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", key, v, err)
		}
		*dst = b

		return nil
	}

	str(EnvData, &cfg.Data)
	str(EnvLogLevel, &cfg.LogLevel)
	str(EnvPlotOut, &cfg.Plot.Out)
	if v, ok := lookup(EnvDegrees); ok {
		ds, err := parseInts(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvDegrees, v, err)
		}
		cfg.Degrees = ds
	}
	if v, ok := lookup(EnvPivotTolerance); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvPivotTolerance, v, err)
		}
		cfg.PivotTolerance = f
	}
	if err := num(EnvPrecision, &cfg.Precision); err != nil {
		return err
	}
	if err := num(EnvWorkers, &cfg.Workers); err != nil {
		return err
	}
	if err := num(EnvPlotSamples, &cfg.Plot.Samples); err != nil {
		return err
	}
	if err := flag(EnvStats, &cfg.Stats); err != nil {
		return err
	}
	if err := flag(EnvValidateNaNInf, &cfg.ValidateNaNInf); err != nil {
		return err
	}

	return nil
}
