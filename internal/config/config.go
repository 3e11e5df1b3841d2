// Package config holds the run options of the sway command: the data and
// grid files, the random seed, and the engine knobs. Options come from
// defaults, then an optional YAML file, then command-line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/TrevorS/sway"
)

// Options are the run options.
type Options struct {
	File     string  `yaml:"file" validate:"required"`
	Grid     string  `yaml:"grid" validate:"required"`
	Seed     int64   `yaml:"seed" validate:"gt=0"`
	P        float64 `yaml:"p" validate:"gte=1"`
	Far      float64 `yaml:"far" validate:"gt=0,lte=1"`
	Min      float64 `yaml:"min" validate:"gt=0,lt=1"`
	Sample   int     `yaml:"sample" validate:"gte=2"`
	Places   int     `yaml:"places" validate:"gte=0,lte=10"`
	LogLevel string  `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// Default returns the options used when nothing is configured.
func Default() Options {
	d := sway.DefaultConfig()
	return Options{
		File:     "data/auto93.csv",
		Grid:     "data/repgrid1.json",
		Seed:     sway.DefaultSeed,
		P:        d.P,
		Far:      d.Far,
		Min:      d.Min,
		Sample:   d.Sample,
		Places:   1,
		LogLevel: "warn",
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports every invalid field in one error.
func (o Options) Validate() error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
	}
	return fmt.Errorf("config: %s", strings.Join(msgs, "; "))
}

// Load reads a YAML file over the defaults. Keys absent from the file keep
// their default values.
func Load(path string) (Options, error) {
	o := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return o, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return o, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return o, nil
}

// Write saves o as YAML at path.
func Write(path string, o Options) error {
	data, err := yaml.Marshal(o)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Engine converts o into the engine's Config.
func (o Options) Engine(logger *slog.Logger) sway.Config {
	cfg := sway.DefaultConfig()
	cfg.P = o.P
	cfg.Far = o.Far
	cfg.Min = o.Min
	cfg.Sample = o.Sample
	cfg.Logger = logger
	return cfg
}

// Level maps LogLevel onto a slog.Level. Unknown names map to Warn.
func (o Options) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(o.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return l
}
