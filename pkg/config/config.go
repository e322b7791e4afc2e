// Package config loads closestpair settings from a TOML file.
//
// Every field has a default, so a missing file or an empty one is valid.
// Values read from the file overwrite the defaults; command-line flags in
// turn overwrite the file.
//
//	[generate]
//	count = 50
//	clusters = 3
//	spread = 20.0
//	extent = 1000.0
//	seed = 0
//	distribution = "clustered"
//
//	[compare]
//	brute_force = true
//	concurrent = true
//	tolerance = 1e-9
//
//	[server]
//	addr = ":8080"
//	max_points = 200000
//	brute_force_limit = 20000
//	read_timeout = "10s"
//	write_timeout = "60s"
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	cperrors "github.com/arkapriyo/closestpair/pkg/errors"
	"github.com/arkapriyo/closestpair/pkg/generate"
	"github.com/arkapriyo/closestpair/pkg/pipeline"
)

// FileName is the config file name looked up in the config directory.
const FileName = "config.toml"

// Config is the full configuration.
type Config struct {
	Generate Generate `toml:"generate"`
	Compare  Compare  `toml:"compare"`
	Server   Server   `toml:"server"`
}

// Generate holds point generation settings.
type Generate struct {
	Count        int     `toml:"count"`
	Clusters     int     `toml:"clusters"`
	Spread       float64 `toml:"spread"`
	Extent       float64 `toml:"extent"`
	Seed         uint64  `toml:"seed"`
	Distribution string  `toml:"distribution"`
}

// Compare holds solver comparison settings.
type Compare struct {
	BruteForce bool    `toml:"brute_force"`
	Concurrent bool    `toml:"concurrent"`
	Tolerance  float64 `toml:"tolerance"`
}

// Server holds HTTP API settings.
type Server struct {
	Addr            string   `toml:"addr"`
	MaxPoints       int      `toml:"max_points"`
	BruteForceLimit int      `toml:"brute_force_limit"` // Negative disables the limit
	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
}

// Duration is a time.Duration written as a string ("10s") in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	gen := generate.DefaultOptions()
	return Config{
		Generate: Generate{
			Count:        pipeline.DefaultCount,
			Clusters:     gen.Clusters,
			Spread:       gen.Spread,
			Extent:       gen.Extent,
			Distribution: string(generate.DistClustered),
		},
		Compare: Compare{
			BruteForce: true,
			Concurrent: true,
			Tolerance:  pipeline.DefaultTolerance,
		},
		Server: Server{
			Addr:            ":8080",
			MaxPoints:       200000,
			BruteForceLimit: pipeline.DefaultBruteForceLimit,
			ReadTimeout:     Duration{10 * time.Second},
			WriteTimeout:    Duration{60 * time.Second},
		},
	}
}

// Load reads the TOML file at path on top of the defaults and validates
// the result. An empty path yields the defaults. A missing file is an
// error here; use [LoadDefault] for the optional user config.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, cperrors.Wrap(cperrors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, cperrors.Wrap(cperrors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, cperrors.New(cperrors.ErrCodeInvalidConfig, "config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the config file from [Dir] if one exists, and the
// defaults otherwise.
func LoadDefault() (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Default(), nil
	}
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err != nil {
		return Default(), nil
	}
	return Load(path)
}

// Dir returns the closestpair config directory:
// $XDG_CONFIG_HOME/closestpair, or the OS user config dir.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "closestpair"), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "closestpair"), nil
}

// Validate checks every field for a usable value.
func (c Config) Validate() error {
	g := c.Generate
	if err := cperrors.ValidateCount("points", g.Count, 2); err != nil {
		return err
	}
	if err := cperrors.ValidateNonNegative("generate.clusters", float64(g.Clusters)); err != nil {
		return err
	}
	if err := cperrors.ValidateNonNegative("generate.spread", g.Spread); err != nil {
		return err
	}
	if err := cperrors.ValidateNonNegative("generate.extent", g.Extent); err != nil {
		return err
	}
	if _, err := generate.ParseDistribution(g.Distribution); err != nil {
		return err
	}

	if err := cperrors.ValidatePositive("compare.tolerance", c.Compare.Tolerance); err != nil {
		return err
	}

	s := c.Server
	if s.Addr == "" {
		return cperrors.New(cperrors.ErrCodeInvalidConfig, "server.addr is required")
	}
	if err := cperrors.ValidateNonNegative("server.max_points", float64(s.MaxPoints)); err != nil {
		return err
	}
	if s.ReadTimeout.Duration < 0 || s.WriteTimeout.Duration < 0 {
		return cperrors.New(cperrors.ErrCodeInvalidConfig, "server timeouts must not be negative")
	}
	return nil
}

// PipelineOptions converts the generate and compare sections into runner
// options.
func (c Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		Count:          c.Generate.Count,
		Distribution:   c.Generate.Distribution,
		Clusters:       c.Generate.Clusters,
		Spread:         c.Generate.Spread,
		Extent:         c.Generate.Extent,
		Seed:           c.Generate.Seed,
		SkipBruteForce: !c.Compare.BruteForce,
		Sequential:     !c.Compare.Concurrent,
		Tolerance:      c.Compare.Tolerance,
	}
}
