package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	cperrors "github.com/arkapriyo/closestpair/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[generate]
count = 1000
seed = 42
distribution = "uniform"

[compare]
brute_force = false

[server]
addr = "127.0.0.1:9000"
read_timeout = "2s"
brute_force_limit = 5000
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Generate.Count != 1000 || cfg.Generate.Seed != 42 || cfg.Generate.Distribution != "uniform" {
		t.Errorf("generate section not applied: %+v", cfg.Generate)
	}
	// Unset keys keep their defaults.
	if cfg.Generate.Clusters != 3 || cfg.Generate.Spread != 20 {
		t.Errorf("generate defaults lost: %+v", cfg.Generate)
	}
	if cfg.Compare.BruteForce {
		t.Error("compare.brute_force should be false")
	}
	if !cfg.Compare.Concurrent {
		t.Error("compare.concurrent should keep its default")
	}
	if cfg.Server.Addr != "127.0.0.1:9000" || cfg.Server.ReadTimeout.Duration != 2*time.Second {
		t.Errorf("server section not applied: %+v", cfg.Server)
	}
	if cfg.Server.BruteForceLimit != 5000 || cfg.Server.MaxPoints != 200000 {
		t.Errorf("server limits: %+v", cfg.Server)
	}
	if cfg.Server.WriteTimeout.Duration != 60*time.Second {
		t.Errorf("write_timeout should keep its default, got %s", cfg.Server.WriteTimeout)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    cperrors.Code
	}{
		{"syntax", `[generate`, cperrors.ErrCodeInvalidConfig},
		{"unknown key", "[generate]\ncolour = \"red\"\n", cperrors.ErrCodeInvalidConfig},
		{"bad duration", "[server]\nread_timeout = \"soon\"\n", cperrors.ErrCodeInvalidConfig},
		{"too few points", "[generate]\ncount = 1\n", cperrors.ErrCodeInvalidInput},
		{"bad distribution", "[generate]\ndistribution = \"poisson\"\n", cperrors.ErrCodeInvalidConfig},
		{"zero tolerance", "[compare]\ntolerance = 0.0\n", cperrors.ErrCodeInvalidConfig},
		{"negative spread", "[generate]\nspread = -1.0\n", cperrors.ErrCodeInvalidConfig},
		{"empty addr", "[server]\naddr = \"\"\n", cperrors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !cperrors.Is(err, tt.code) {
				t.Errorf("Load() = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !cperrors.Is(err, cperrors.ErrCodeFileNotFound) {
		t.Errorf("Load() = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadDefaultFromXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	// No file: defaults.
	cfg, err := LoadDefault()
	if err != nil || cfg != Default() {
		t.Fatalf("LoadDefault() without file = %+v, %v", cfg, err)
	}

	appDir := filepath.Join(dir, "closestpair")
	if err := os.MkdirAll(appDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(appDir, FileName), []byte("[generate]\ncount = 77\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadDefault()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Generate.Count != 77 {
		t.Errorf("Count = %d, want 77", cfg.Generate.Count)
	}
}

func TestDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := Dir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join("/tmp/xdg", "closestpair") {
		t.Errorf("Dir() = %q", dir)
	}
}

func TestPipelineOptions(t *testing.T) {
	cfg := Default()
	cfg.Compare.BruteForce = false
	cfg.Compare.Concurrent = false
	cfg.Generate.Seed = 5

	opts := cfg.PipelineOptions()
	if !opts.SkipBruteForce || !opts.Sequential {
		t.Error("compare flags should invert into skip/sequential")
	}
	if opts.Count != cfg.Generate.Count || opts.Seed != 5 || opts.Tolerance != cfg.Compare.Tolerance {
		t.Errorf("PipelineOptions() = %+v", opts)
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("options from default config should validate: %v", err)
	}
}
