// Package render turns patch layouts into output artifacts.
//
// # Overview
//
// The package provides:
//
//   - SVG rendering of a patch layout ([RenderSVG])
//   - JSON export of a layout with its run metadata ([RenderJSON])
//   - Generic format conversion (SVG to PNG/PDF via [ToPNG] and [ToPDF])
//   - Eased interpolation between two layouts ([Interpolate])
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG to other formats using the
// external rsvg-convert tool (from librsvg):
//
//	svg := render.RenderSVG(patches, cfg, render.WithLabels())
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Stage Diagrams
//
// The [stagegraph] subpackage renders the packing stage sequence as a
// Graphviz diagram.
//
// [stagegraph]: github.com/mlindner/patchpack/pkg/render/stagegraph
package render
