package pack

import (
	"testing"

	"github.com/mlindner/patchpack/pkg/errors"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"zero cols", func(c *Config) { c.Cols = 0 }, true},
		{"negative cols", func(c *Config) { c.Cols = -3 }, true},
		{"zero rows", func(c *Config) { c.Rows = 0 }, true},
		{"zero width", func(c *Config) { c.Width = 0 }, true},
		{"negative height", func(c *Config) { c.Height = -10 }, true},
		{"negative padding", func(c *Config) { c.Padding = -1 }, true},
		{"zero padding is valid", func(c *Config) { c.Padding = 0 }, false},
		{"single cell", func(c *Config) { c.Cols, c.Rows = 1, 1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestConfigCellSize(t *testing.T) {
	cfg := Config{Cols: 4, Rows: 2, Width: 200, Height: 100, Padding: 0}
	w, h := cfg.CellSize()
	if w != 50 || h != 50 {
		t.Errorf("CellSize = (%g, %g), want (50, 50)", w, h)
	}
}
