// Package pkg provides the core libraries for Patchpack layout visualization.
//
// # Overview
//
// Patchpack generates a grid of randomly sized rectangles ("patches")
// and walks them through a multi-stage packing pipeline, rendering each
// intermediate layout. The pkg directory is organized into four areas:
//
//  1. [pack] - Domain logic (patch generation, the stage pipeline)
//  2. [render] - Visualization (SVG, PNG, PDF, JSON, stage diagrams)
//  3. [cache] - Layout and artifact caching (file, Redis, null backends)
//  4. [pipeline] - Orchestration (layout → render with caching)
//
// # Architecture
//
// The typical data flow through Patchpack:
//
//	Grid config + seed
//	         ↓
//	    [pack] package (generate → upright → sort → flow → pack upwards)
//	         ↓
//	    [render] package (SVG rendering, format conversion)
//	         ↓
//	    SVG/PNG/PDF/JSON output
//
// # Quick Start
//
// Run the full pipeline and render the final layout:
//
//	import (
//	    "context"
//	    "github.com/mlindner/patchpack/pkg/pack"
//	    "github.com/mlindner/patchpack/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, _ := runner.Execute(context.Background(), pipeline.Options{
//	    Cols:    3,
//	    Rows:    6,
//	    Formats: []string{"svg", "json"},
//	})
//	_ = result.Artifacts["svg"]
//
// Or drive the stages one at a time:
//
//	pl, _ := pack.NewSeeded(pack.Config{Cols: 3, Rows: 6}, 42)
//	for !pl.Done() {
//	    pl.Advance()
//	}
//
// # Main Packages
//
// [geom] - Minimal 2D primitives (points, sizes, rectangles).
//
// [patch] - The Patch type: an axis-aligned rectangle with identity,
// rotation state, and edge accessors.
//
// [pack] - The five-stage pipeline: initial grid generation, uprighting,
// height sorting, boustrophedon row flow, and upward compaction.
//
// [render] - SVG rendering of layouts, PNG/PDF conversion, JSON export,
// stage-to-stage interpolation, and pipeline diagrams ([render/stagegraph]).
//
// [cache] - Content-addressed caching of layouts and artifacts with
// file, Redis, and null backends plus retry support.
//
// [pipeline] - The Runner used by the CLI and HTTP server: validates
// options, computes layouts, renders artifacts, and caches both.
//
// [observability] - Optional hooks for instrumenting layout, render,
// and cache events without backend dependencies.
//
// [errors] - Structured error codes shared across packages.
//
// [buildinfo] - Build-time version information set via ldflags.
//
// [geom]: https://pkg.go.dev/github.com/mlindner/patchpack/pkg/geom
// [patch]: https://pkg.go.dev/github.com/mlindner/patchpack/pkg/patch
// [pack]: https://pkg.go.dev/github.com/mlindner/patchpack/pkg/pack
// [render]: https://pkg.go.dev/github.com/mlindner/patchpack/pkg/render
// [render/stagegraph]: https://pkg.go.dev/github.com/mlindner/patchpack/pkg/render/stagegraph
// [cache]: https://pkg.go.dev/github.com/mlindner/patchpack/pkg/cache
// [pipeline]: https://pkg.go.dev/github.com/mlindner/patchpack/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/mlindner/patchpack/pkg/observability
// [errors]: https://pkg.go.dev/github.com/mlindner/patchpack/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/mlindner/patchpack/pkg/buildinfo
package pkg
