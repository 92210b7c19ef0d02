package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/briancoyner/interactive-grid/pkg/errors"
	"github.com/briancoyner/interactive-grid/pkg/layout"
)

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg.Layout != def.Layout || cfg.Play != def.Play || cfg.Cache != def.Cache {
		t.Errorf("Load(missing) = %+v, want defaults %+v", cfg, def)
	}
}

func TestLoadTOMLKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	src := `
[layout]
width = 600

[play]
preset = "random"
seed = 7

[cache]
ttl = "1h30m"
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := layout.Options{Width: 600, Spacing: 16, Inset: 16}
	if cfg.Layout != want {
		t.Errorf("Layout = %+v, want %+v", cfg.Layout, want)
	}
	if cfg.Play.Preset != "random" || cfg.Play.Seed != 7 {
		t.Errorf("Play = %+v", cfg.Play)
	}
	if cfg.Cache.TTL.Duration != 90*time.Minute || cfg.Cache.Disabled {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	src := "layout:\n  spacing: 8\ncache:\n  disabled: true\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Layout.Spacing != 8 || cfg.Layout.Width != 400 {
		t.Errorf("Layout = %+v", cfg.Layout)
	}
	if !cfg.Cache.Disabled {
		t.Error("Cache.Disabled = false, want true")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		src  string
	}{
		{"malformed toml", "config.toml", "[layout\nwidth = 1"},
		{"bad duration", "config.toml", "[cache]\nttl = \"soon\""},
		{"unknown preset", "config.toml", "[play]\npreset = \"diagonal\""},
		{"negative width", "config.toml", "[layout]\nwidth = -5"},
		{"malformed yaml", "config.yml", "layout: [1, 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.src), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("Load error = %v, want %s", err, errors.ErrCodeInvalidFormat)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"config.toml", "config.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			cfg := Default()
			cfg.Layout.Width = 320
			cfg.Play.Seed = 99
			cfg.Cache.TTL = Duration{2 * time.Hour}

			if err := cfg.Save(path); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got.Layout != cfg.Layout || got.Play != cfg.Play || got.Cache != cfg.Cache {
				t.Errorf("round trip = %+v, want %+v", got, cfg)
			}
		})
	}
}

func TestPath(t *testing.T) {
	t.Setenv(EnvPath, "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	got, err := Path()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/xdg", "interactive-grid", "config.toml"); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}

	t.Setenv(EnvPath, "/etc/grid.yaml")
	if got, _ := Path(); got != "/etc/grid.yaml" {
		t.Errorf("Path() with %s = %q", EnvPath, got)
	}
}
