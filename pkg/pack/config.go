package pack

import "github.com/mlindner/patchpack/pkg/errors"

// Default layout parameters, matching the 768x768 window the interactive
// viewers open by default.
const (
	DefaultCols    = 3
	DefaultRows    = 6
	DefaultWidth   = 768.0
	DefaultHeight  = 768.0
	DefaultPadding = 4.0
)

// Config describes the grid and canvas a layout is generated for. The
// canvas width bounds row-flow placement; the canvas height only sizes
// the initial grid cells, and packed layouts may exceed it.
type Config struct {
	Cols    int     `json:"cols"`
	Rows    int     `json:"rows"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Padding float64 `json:"padding"`
}

// DefaultConfig returns a config with the default grid and canvas.
func DefaultConfig() Config {
	return Config{
		Cols:    DefaultCols,
		Rows:    DefaultRows,
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Padding: DefaultPadding,
	}
}

// Validate checks the config for degenerate values. Invalid configs are
// rejected up front rather than producing patches with non-positive
// extents downstream.
func (c Config) Validate() error {
	if c.Cols <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "columns must be positive, got %d", c.Cols)
	}
	if c.Rows <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "rows must be positive, got %d", c.Rows)
	}
	if c.Width <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas width must be positive, got %g", c.Width)
	}
	if c.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas height must be positive, got %g", c.Height)
	}
	if c.Padding < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "padding must not be negative, got %g", c.Padding)
	}
	return nil
}

// CellSize returns the dimensions of one grid cell.
func (c Config) CellSize() (width, height float64) {
	return c.Width / float64(c.Cols), c.Height / float64(c.Rows)
}
