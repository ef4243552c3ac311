package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names shared by the CLI commands.
const (
	FlagConfig    = "config"
	FlagData      = "data"
	FlagDegree    = "degree"
	FlagPrecision = "precision"
	FlagStats     = "stats"
	FlagValidate  = "validate"
	FlagPivotTol  = "pivot-tol"
	FlagWorkers   = "workers"
	FlagLogLevel  = "log-level"
	FlagOut       = "out"
	FlagTitle     = "title"
	FlagXMin      = "min"
	FlagXMax      = "max"
	FlagSamples   = "samples"
)

// RegisterFitFlags defines the flags every fitting command accepts.
// Defaults come from Default so that --help shows the effective values.
func RegisterFitFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.StringP(FlagData, "d", d.Data, "point file (.csv, .yaml, .yml, .json); empty uses the demo set")
	fs.IntSliceP(FlagDegree, "n", d.Degrees, "polynomial degree(s) to fit")
	fs.Bool(FlagValidate, d.ValidateNaNInf, "reject non-finite points and overflowing power sums")
	fs.Float64(FlagPivotTol, d.PivotTolerance, "treat pivots with |p| <= tol as zero")
	fs.Int(FlagWorkers, d.Workers, "max concurrent fits (0 = one per degree)")
}

// RegisterOutputFlags defines the text-report flags of the fit command.
func RegisterOutputFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.IntP(FlagPrecision, "p", d.Precision, "digits after the decimal point (-1 = shortest)")
	fs.Bool(FlagStats, d.Stats, "print residual statistics")
}

// RegisterPlotFlags defines the plot command's flags.
func RegisterPlotFlags(fs *pflag.FlagSet) {
	d := Default().Plot
	fs.StringP(FlagOut, "o", d.Out, "output image; extension selects png, svg, pdf, ...")
	fs.String(FlagTitle, d.Title, "chart title")
	fs.Float64(FlagXMin, d.XMin, "left end of the plotted range")
	fs.Float64(FlagXMax, d.XMax, "right end of the plotted range")
	fs.Int(FlagSamples, d.Samples, "samples per curve")
}

// ApplyFlags copies every flag the user set on fs into cfg. Flags that
// are not defined on fs, or were left at their default, are ignored.
func ApplyFlags(cfg *Config, fs *pflag.FlagSet) error {
	changed := func(name string) bool {
		return fs.Lookup(name) != nil && fs.Changed(name)
	}

	var err error
	if changed(FlagData) {
		if cfg.Data, err = fs.GetString(FlagData); err != nil {
			return flagErr(FlagData, err)
		}
	}
	if changed(FlagDegree) {
		if cfg.Degrees, err = fs.GetIntSlice(FlagDegree); err != nil {
			return flagErr(FlagDegree, err)
		}
	}
	if changed(FlagPrecision) {
		if cfg.Precision, err = fs.GetInt(FlagPrecision); err != nil {
			return flagErr(FlagPrecision, err)
		}
	}
	if changed(FlagStats) {
		if cfg.Stats, err = fs.GetBool(FlagStats); err != nil {
			return flagErr(FlagStats, err)
		}
	}
	if changed(FlagValidate) {
		if cfg.ValidateNaNInf, err = fs.GetBool(FlagValidate); err != nil {
			return flagErr(FlagValidate, err)
		}
	}
	if changed(FlagPivotTol) {
		if cfg.PivotTolerance, err = fs.GetFloat64(FlagPivotTol); err != nil {
			return flagErr(FlagPivotTol, err)
		}
	}
	if changed(FlagWorkers) {
		if cfg.Workers, err = fs.GetInt(FlagWorkers); err != nil {
			return flagErr(FlagWorkers, err)
		}
	}
	if changed(FlagLogLevel) {
		if cfg.LogLevel, err = fs.GetString(FlagLogLevel); err != nil {
			return flagErr(FlagLogLevel, err)
		}
	}
	if changed(FlagOut) {
		if cfg.Plot.Out, err = fs.GetString(FlagOut); err != nil {
			return flagErr(FlagOut, err)
		}
	}
	if changed(FlagTitle) {
		if cfg.Plot.Title, err = fs.GetString(FlagTitle); err != nil {
			return flagErr(FlagTitle, err)
		}
	}
	if changed(FlagXMin) {
		if cfg.Plot.XMin, err = fs.GetFloat64(FlagXMin); err != nil {
			return flagErr(FlagXMin, err)
		}
	}
	if changed(FlagXMax) {
		if cfg.Plot.XMax, err = fs.GetFloat64(FlagXMax); err != nil {
			return flagErr(FlagXMax, err)
		}
	}
	if changed(FlagSamples) {
		if cfg.Plot.Samples, err = fs.GetInt(FlagSamples); err != nil {
			return flagErr(FlagSamples, err)
		}
	}

	return nil
}

func flagErr(name string, err error) error {
	return fmt.Errorf("config: --%s: %w", name, err)
}

// Resolve layers file, environment and flags, then validates the result.
// The file path is read from the --config flag when fs defines it.
func Resolve(fs *pflag.FlagSet, lookup LookupFunc) (Config, error) {
	var path string
	if fs.Lookup(FlagConfig) != nil {
		path, _ = fs.GetString(FlagConfig)
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, err
	}
	if err = ApplyEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}
	if err = ApplyFlags(&cfg, fs); err != nil {
		return Config{}, err
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
