package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/mlindner/patchpack/pkg/pack"
	"github.com/mlindner/patchpack/pkg/pipeline"
)

// defaultConfigDescription is shown in flag help.
const defaultConfigDescription = "~/.config/patchpack/config.toml"

// Cache backend names accepted in the config file.
const (
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
	CacheBackendNone  = "none"
)

// Config is the on-disk CLI configuration, loaded from a TOML file.
// Every field has a sensible default, so the file is optional and may
// set only the values it wants to change.
type Config struct {
	Grid   GridConfig   `toml:"grid"`
	Canvas CanvasConfig `toml:"canvas"`
	Pack   PackConfig   `toml:"pack"`
	Cache  CacheConfig  `toml:"cache"`
}

// GridConfig controls how many patches are generated.
type GridConfig struct {
	Cols int `toml:"cols"`
	Rows int `toml:"rows"`
}

// CanvasConfig controls the layout canvas.
type CanvasConfig struct {
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	Padding float64 `toml:"padding"`
}

// PackConfig controls generation.
type PackConfig struct {
	Seed uint64 `toml:"seed"`
}

// CacheConfig selects the cache backend.
type CacheConfig struct {
	Backend   string `toml:"backend"`
	RedisAddr string `toml:"redis_addr"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Grid:   GridConfig{Cols: pack.DefaultCols, Rows: pack.DefaultRows},
		Canvas: CanvasConfig{Width: pack.DefaultWidth, Height: pack.DefaultHeight, Padding: pack.DefaultPadding},
		Pack:   PackConfig{Seed: pipeline.DefaultSeed},
		Cache:  CacheConfig{Backend: CacheBackendFile, RedisAddr: "localhost:6379"},
	}
}

// LoadConfig reads the config file at path. An empty path uses the
// default location, where a missing file is not an error; an explicit
// path must exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		var err error
		path, err = defaultConfigPath()
		if err != nil {
			return cfg, nil
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return cfg, fmt.Errorf("config file %s does not exist", path)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Cache.Backend {
	case CacheBackendFile, CacheBackendRedis, CacheBackendNone:
	default:
		return fmt.Errorf("invalid cache backend: %q (must be file, redis, or none)", c.Cache.Backend)
	}
	if c.Cache.Backend == CacheBackendRedis && c.Cache.RedisAddr == "" {
		return fmt.Errorf("cache backend redis requires redis_addr")
	}
	return nil
}

// defaultConfigPath returns the config location using XDG standard
// (~/.config/patchpack/config.toml).
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
