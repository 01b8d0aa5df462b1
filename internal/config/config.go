// SPDX-License-Identifier: MIT

// Package config loads spinlab settings from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/spinlab/spin"
	"gopkg.in/yaml.v3"
)

// Config is the full spinlab configuration.
type Config struct {
	System      SystemConfig      `json:"system" yaml:"system"`
	Solver      SolverConfig      `json:"solver" yaml:"solver"`
	Sweep       SweepConfig       `json:"sweep" yaml:"sweep"`
	Transitions TransitionsConfig `json:"transitions" yaml:"transitions"`
	Compare     CompareConfig     `json:"compare" yaml:"compare"`
	Logging     LoggingConfig     `json:"logging" yaml:"logging"`
}

// SystemConfig describes the spin system. Field is in tesla.
type SystemConfig struct {
	Spin   string          `json:"spin" yaml:"spin"`
	GE     float64         `json:"ge" yaml:"ge"`
	Field  [3]float64      `json:"field" yaml:"field"`
	Nuclei []NucleusConfig `json:"nuclei" yaml:"nuclei"`
}

// NucleusConfig names an isotope from the built-in table. Spin and GN override
// the table values; Tensor replaces the isotropic coupling A. Couplings are in MHz.
type NucleusConfig struct {
	Isotope string         `json:"isotope" yaml:"isotope"`
	Spin    string         `json:"spin,omitempty" yaml:"spin,omitempty"`
	GN      *float64       `json:"gn,omitempty" yaml:"gn,omitempty"`
	A       float64        `json:"a" yaml:"a"`
	Tensor  *[3][3]float64 `json:"tensor,omitempty" yaml:"tensor,omitempty"`
}

// SolverConfig controls the Hermitian eigensolver.
type SolverConfig struct {
	Tolerance float64 `json:"tolerance" yaml:"tolerance"`
	MaxIter   int     `json:"max_iter" yaml:"max_iter"`
}

// SweepConfig is the field range scanned by the sweep command, along the configured field direction.
type SweepConfig struct {
	From   float64 `json:"from" yaml:"from"`
	To     float64 `json:"to" yaml:"to"`
	Points int     `json:"points" yaml:"points"`
}

// TransitionsConfig filters weak lines.
type TransitionsConfig struct {
	MinIntensity float64 `json:"min_intensity" yaml:"min_intensity"`
}

// CompareConfig sets the dense vs sparse benchmark sizes.
type CompareConfig struct {
	Sizes   []int `json:"sizes" yaml:"sizes"`
	Repeats int   `json:"repeats" yaml:"repeats"`
}

// LoggingConfig selects the zap level: debug, info, warn or error.
type LoggingConfig struct {
	Level string `json:"level" yaml:"level"`
}

// Default returns hydrogen in an X-band resonance field with the standard solver settings.
func Default() *Config {
	return &Config{
		System: SystemConfig{
			Spin:  "1/2",
			GE:    spin.GFreeElectron,
			Field: [3]float64{0, 0, 0.35},
			Nuclei: []NucleusConfig{
				{Isotope: "1H", A: spin.HydrogenHyperfineMHz},
			},
		},
		Solver: SolverConfig{
			Tolerance: spin.DefaultTolerance,
		},
		Sweep: SweepConfig{
			From:   0,
			To:     0.2,
			Points: 21,
		},
		Transitions: TransitionsConfig{
			MinIntensity: 1e-3,
		},
		Compare: CompareConfig{
			Sizes:   []int{100, 200, 400},
			Repeats: 5,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds the effective configuration: defaults, then the YAML file at
// path (skipped when path is empty), then SPINLAB_* environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadFromFile(path); err != nil {
			return nil, err
		}
	}
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFromFile reads YAML from path on top of Default. Keys absent from the file keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides reads SPINLAB_FIELD ("x,y,z" or a single z value), SPINLAB_GE,
// SPINLAB_TOLERANCE, SPINLAB_MAX_ITER, SPINLAB_COMPARE_SIZES ("100,200"),
// SPINLAB_COMPARE_REPEATS and SPINLAB_LOG_LEVEL. Unparsable values are ignored.
func applyEnvOverrides(c *Config) {
	if v := os.Getenv("SPINLAB_FIELD"); v != "" {
		if f, ok := parseField(v); ok {
			c.System.Field = f
		}
	}
	if v := os.Getenv("SPINLAB_GE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.System.GE = f
		}
	}
	if v := os.Getenv("SPINLAB_TOLERANCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Solver.Tolerance = f
		}
	}
	if v := os.Getenv("SPINLAB_MAX_ITER"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Solver.MaxIter = n
		}
	}
	if v := os.Getenv("SPINLAB_COMPARE_SIZES"); v != "" {
		if sizes, ok := parseInts(v); ok {
			c.Compare.Sizes = sizes
		}
	}
	if v := os.Getenv("SPINLAB_COMPARE_REPEATS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Compare.Repeats = n
		}
	}
	if v := os.Getenv("SPINLAB_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
}

func parseField(s string) ([3]float64, bool) {
	parts := strings.Split(s, ",")
	var out [3]float64
	switch len(parts) {
	case 1:
		z, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return out, false
		}
		out[2] = z
	case 3:
		for i, p := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return out, false
			}
			out[i] = f
		}
	default:
		return out, false
	}

	return out, true
}

func parseInts(s string) ([]int, bool) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, false
		}
		out = append(out, n)
	}

	return out, true
}

// Validate checks ranges that the loaders cannot enforce. The spin system
// itself is checked by SpinSystem.
func (c *Config) Validate() error {
	if err := c.checkFinite(); err != nil {
		return err
	}
	if c.Solver.Tolerance <= 0 {
		return fmt.Errorf("solver.tolerance must be positive, got %g", c.Solver.Tolerance)
	}
	if c.Solver.MaxIter < 0 {
		return fmt.Errorf("solver.max_iter must be non-negative, got %d", c.Solver.MaxIter)
	}
	if c.Sweep.Points < 2 {
		return fmt.Errorf("sweep.points must be at least 2, got %d", c.Sweep.Points)
	}
	if c.Transitions.MinIntensity < 0 {
		return fmt.Errorf("transitions.min_intensity must be non-negative, got %g", c.Transitions.MinIntensity)
	}
	if len(c.Compare.Sizes) == 0 {
		return errors.New("compare.sizes must not be empty")
	}
	for _, n := range c.Compare.Sizes {
		if n < 1 {
			return fmt.Errorf("compare.sizes entries must be positive, got %d", n)
		}
	}
	if c.Compare.Repeats < 1 {
		return fmt.Errorf("compare.repeats must be at least 1, got %d", c.Compare.Repeats)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}

	return nil
}

// checkFinite rejects NaN and ±Inf in every float setting. NaN slips past
// ordered comparisons, so the range checks below cannot catch it.
func (c *Config) checkFinite() error {
	fields := []struct {
		key string
		v   float64
	}{
		{"solver.tolerance", c.Solver.Tolerance},
		{"sweep.from", c.Sweep.From},
		{"sweep.to", c.Sweep.To},
		{"transitions.min_intensity", c.Transitions.MinIntensity},
		{"system.ge", c.System.GE},
		{"system.field[0]", c.System.Field[0]},
		{"system.field[1]", c.System.Field[1]},
		{"system.field[2]", c.System.Field[2]},
	}
	for _, f := range fields {
		if !finite(f.v) {
			return fmt.Errorf("%s must be finite, got %g", f.key, f.v)
		}
	}
	for i, n := range c.System.Nuclei {
		if !finite(n.A) {
			return fmt.Errorf("system.nuclei[%d].a must be finite, got %g", i, n.A)
		}
		if n.GN != nil && !finite(*n.GN) {
			return fmt.Errorf("system.nuclei[%d].gn must be finite, got %g", i, *n.GN)
		}
		if n.Tensor != nil {
			for _, row := range n.Tensor {
				for _, v := range row {
					if !finite(v) {
						return fmt.Errorf("system.nuclei[%d].tensor must be finite, got %g", i, v)
					}
				}
			}
		}
	}

	return nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// SpinSystem resolves isotopes and spins into a validated spin.System.
func (c *Config) SpinSystem() (spin.System, error) {
	twoS, err := spin.ParseTwoS(c.System.Spin)
	if err != nil {
		return spin.System{}, fmt.Errorf("system.spin %q: %w", c.System.Spin, err)
	}
	sys := spin.System{
		TwoS:   twoS,
		GE:     c.System.GE,
		Field:  spin.Vector(c.System.Field),
		Nuclei: make([]spin.Nucleus, 0, len(c.System.Nuclei)),
	}
	for i, nc := range c.System.Nuclei {
		n, ok := spin.NucleusFor(nc.Isotope, nc.A)
		if !ok {
			return spin.System{}, fmt.Errorf("system.nuclei[%d]: unknown isotope %q", i, nc.Isotope)
		}
		if nc.Spin != "" {
			if n.TwoI, err = spin.ParseTwoS(nc.Spin); err != nil {
				return spin.System{}, fmt.Errorf("system.nuclei[%d].spin %q: %w", i, nc.Spin, err)
			}
		}
		if nc.GN != nil {
			n.GN = *nc.GN
		}
		if nc.Tensor != nil {
			t := spin.Tensor(*nc.Tensor)
			n.Tensor = &t
		}
		sys.Nuclei = append(sys.Nuclei, n)
	}
	if err := sys.Validate(); err != nil {
		return spin.System{}, err
	}

	return sys, nil
}
