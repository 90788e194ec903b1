// Package cache provides pluggable byte caching for layout and artifact
// results, with file, Redis, and no-op backends behind a single
// interface. Keys are built by a Keyer so every caller derives them the
// same way.
package cache

import (
	"context"
	"time"
)

// TTL values for the different kinds of cached data.
const (
	// TTLLayout is the lifetime of computed patch placements. Layouts
	// are cheap to recompute, so they expire relatively quickly.
	TTLLayout = 24 * time.Hour

	// TTLArtifact is the lifetime of rendered outputs (SVG, PNG, PDF,
	// JSON). Artifacts are derived purely from a layout, so they can
	// live longer.
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the storage interface shared by all backends.
//
// Get returns (data, true, nil) on a hit and (nil, false, nil) on a
// miss; errors are reserved for backend failures. A ttl of 0 on Set
// means the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// LayoutKeyOpts captures every input that affects a computed layout.
// Two runs with equal opts produce identical placements, so they can
// share a cache entry.
type LayoutKeyOpts struct {
	Cols    int     `json:"cols"`
	Rows    int     `json:"rows"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Padding float64 `json:"padding"`
	Seed    uint64  `json:"seed"`
	Stage   string  `json:"stage"`
}

// ArtifactKeyOpts captures every rendering input beyond the layout
// itself.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Labels bool   `json:"labels"`
}

// Keyer generates cache keys for the two cacheable stages.
type Keyer interface {
	// LayoutKey generates a key for cached patch placements.
	LayoutKey(opts LayoutKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact derived from
	// the layout identified by layoutHash.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key generation scheme. Keys are
// "kind:sha256(inputs)", so they are filesystem- and Redis-safe
// regardless of the option values.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for cached patch placements.
func (k *DefaultKeyer) LayoutKey(opts LayoutKeyOpts) string {
	return hashKey("layout", opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
