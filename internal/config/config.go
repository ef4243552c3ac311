// Package config resolves lsqfit CLI settings from three layers, each
// overriding the previous one:
//
//  1. a YAML file (optional, --config),
//  2. LSQFIT_* environment variables,
//  3. command-line flags the user actually set.
//
// Unset layers leave earlier values untouched, so Default() shows through
// whenever nothing overrides it.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a value that parses but makes no sense (negative
// precision, empty degree list, inverted plot range, ...).
var ErrInvalid = errors.New("config: invalid value")

// Config is the fully resolved CLI configuration.
type Config struct {
	Data           string   `yaml:"data"` // empty: built-in demo set
	Degrees        []int    `yaml:"degrees"`
	Precision      int      `yaml:"precision"` // -1: shortest round-trip
	Stats          bool     `yaml:"stats"`
	ValidateNaNInf bool     `yaml:"validate_nan_inf"`
	PivotTolerance float64  `yaml:"pivot_tolerance"`
	Workers        int      `yaml:"workers"` // 0: one goroutine per degree
	LogLevel       string   `yaml:"log_level"`
	Plot           PlotConf `yaml:"plot"`
}

// PlotConf holds the settings of the plot command.
type PlotConf struct {
	Out     string  `yaml:"out"`
	Title   string  `yaml:"title"`
	XMin    float64 `yaml:"x_min"`
	XMax    float64 `yaml:"x_max"`
	Samples int     `yaml:"samples"`
	Width   float64 `yaml:"width"`  // inches
	Height  float64 `yaml:"height"` // inches
}

// Default mirrors the classic run: demo data, a line and a parabola,
// plotted over [0, 5] with 1000 samples.
func Default() Config {
	return Config{
		Degrees:        []int{1, 2},
		Precision:      -1,
		ValidateNaNInf: true,
		LogLevel:       "info",
		Plot: PlotConf{
			Out:     "lsqfit.png",
			XMin:    0,
			XMax:    5,
			Samples: 1000,
			Width:   6,
			Height:  4,
		},
	}
}

// Load returns Default overlaid with the YAML file at path. An empty path
// yields Default unchanged; unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %q: %w", path, err)
	}
	if err = decode(bytes.NewReader(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %q: %w", path, err)
	}

	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// Validate checks cross-field constraints after all layers are applied.
func (c Config) Validate() error {
	if len(c.Degrees) == 0 {
		return fmt.Errorf("config: degrees: none given: %w", ErrInvalid)
	}
	for _, d := range c.Degrees {
		if d < 0 {
			return fmt.Errorf("config: degree %d: %w", d, ErrInvalid)
		}
	}
	if c.Precision < -1 {
		return fmt.Errorf("config: precision %d: %w", c.Precision, ErrInvalid)
	}
	if !(c.PivotTolerance >= 0) || math.IsInf(c.PivotTolerance, 1) {
		return fmt.Errorf("config: pivot_tolerance %g: %w", c.PivotTolerance, ErrInvalid)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: workers %d: %w", c.Workers, ErrInvalid)
	}
	if !(c.Plot.XMin < c.Plot.XMax) {
		return fmt.Errorf("config: plot range [%g, %g]: %w", c.Plot.XMin, c.Plot.XMax, ErrInvalid)
	}
	if c.Plot.Samples < 2 {
		return fmt.Errorf("config: plot samples %d: %w", c.Plot.Samples, ErrInvalid)
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("config: plot size %gx%g: %w", c.Plot.Width, c.Plot.Height, ErrInvalid)
	}

	return nil
}

// parseInts reads a comma-separated integer list such as "1,2,3".
func parseInts(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}
