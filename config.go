package sway

import (
	"fmt"
	"log/slog"
)

// Config controls distance and tree-building behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// P is the Minkowski coefficient combining per-column distances.
	// 1 is Manhattan-like, 2 is Euclidean-like. Must be >= 1. Default: 2.
	P float64

	// Far is the percentile of the sorted neighbor list used to pick the
	// second anchor of a split. Values just under 1 avoid extreme outliers.
	// Must be in (0, 1]. Default: 0.95.
	Far float64

	// Min is the stopping exponent: a node with at most max(2, N^Min) rows,
	// where N is the row count at the root, is not split further.
	// Must be in (0, 1). Default: 0.5.
	Min float64

	// Sample is how many rows Half draws (with replacement) to find its
	// anchors. Must be >= 2. Default: 512.
	Sample int

	// Metric overrides the distance combination. Default: MinkowskiMetric{P}.
	Metric Metric

	// Logger receives debug events from recursive builds. Default: discard.
	Logger *slog.Logger
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		P:      2,
		Far:    0.95,
		Min:    0.5,
		Sample: 512,
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	d := DefaultConfig()
	if cfg.P == 0 {
		cfg.P = d.P
	}
	if cfg.Far == 0 {
		cfg.Far = d.Far
	}
	if cfg.Min == 0 {
		cfg.Min = d.Min
	}
	if cfg.Sample == 0 {
		cfg.Sample = d.Sample
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.P < 1 {
		return fmt.Errorf("sway: P must be >= 1, got %g", cfg.P)
	}
	if cfg.Far <= 0 || cfg.Far > 1 {
		return fmt.Errorf("sway: Far must be in (0, 1], got %g", cfg.Far)
	}
	if cfg.Min <= 0 || cfg.Min >= 1 {
		return fmt.Errorf("sway: Min must be in (0, 1), got %g", cfg.Min)
	}
	if cfg.Sample < 2 {
		return fmt.Errorf("%w: Sample must be >= 2, got %d", ErrEmptyPartition, cfg.Sample)
	}
	return nil
}

func (cfg Config) metric() Metric {
	if cfg.Metric != nil {
		return cfg.Metric
	}
	return MinkowskiMetric{P: cfg.P}
}
