package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mlindner/patchpack/pkg/pack"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	// Point the default location at an empty directory so no real
	// config file leaks into the test.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	want := DefaultConfig()
	if cfg != want {
		t.Errorf("LoadConfig() = %+v, want defaults %+v", cfg, want)
	}
	if cfg.Grid.Cols != pack.DefaultCols || cfg.Grid.Rows != pack.DefaultRows {
		t.Errorf("default grid = %dx%d, want %dx%d", cfg.Grid.Cols, cfg.Grid.Rows, pack.DefaultCols, pack.DefaultRows)
	}
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("LoadConfig() with missing explicit path should error")
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("error = %q, want mention of missing file", err)
	}
}

func TestLoadConfigPartialOverride(t *testing.T) {
	path := writeConfig(t, `
[grid]
cols = 5

[pack]
seed = 7
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Grid.Cols != 5 {
		t.Errorf("Grid.Cols = %d, want 5", cfg.Grid.Cols)
	}
	if cfg.Pack.Seed != 7 {
		t.Errorf("Pack.Seed = %d, want 7", cfg.Pack.Seed)
	}
	// Untouched sections keep their defaults.
	if cfg.Grid.Rows != pack.DefaultRows {
		t.Errorf("Grid.Rows = %d, want default %d", cfg.Grid.Rows, pack.DefaultRows)
	}
	if cfg.Canvas.Width != pack.DefaultWidth {
		t.Errorf("Canvas.Width = %v, want default %v", cfg.Canvas.Width, pack.DefaultWidth)
	}
	if cfg.Cache.Backend != CacheBackendFile {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, CacheBackendFile)
	}
}

func TestLoadConfigFullFile(t *testing.T) {
	path := writeConfig(t, `
[grid]
cols = 2
rows = 3

[canvas]
width = 400.0
height = 300.0
padding = 8.0

[pack]
seed = 99

[cache]
backend = "redis"
redis_addr = "redis.internal:6379"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Grid.Cols != 2 || cfg.Grid.Rows != 3 {
		t.Errorf("grid = %dx%d, want 2x3", cfg.Grid.Cols, cfg.Grid.Rows)
	}
	if cfg.Canvas.Width != 400 || cfg.Canvas.Height != 300 || cfg.Canvas.Padding != 8 {
		t.Errorf("canvas = %+v, want 400x300 padding 8", cfg.Canvas)
	}
	if cfg.Cache.Backend != CacheBackendRedis || cfg.Cache.RedisAddr != "redis.internal:6379" {
		t.Errorf("cache = %+v, want redis backend", cfg.Cache)
	}
}

func TestLoadConfigInvalidBackend(t *testing.T) {
	path := writeConfig(t, `
[cache]
backend = "memcached"
`)

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("LoadConfig() with invalid backend should error")
	}
	if !strings.Contains(err.Error(), "invalid cache backend") {
		t.Errorf("error = %q, want invalid backend message", err)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, "not [valid toml")

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("LoadConfig() with malformed TOML should error")
	}
}
