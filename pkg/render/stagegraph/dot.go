// Package stagegraph renders the packing stage sequence as a Graphviz
// diagram: one box per stage, arrows following the advance order.
package stagegraph

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/mlindner/patchpack/pkg/pack"
	"github.com/mlindner/patchpack/pkg/render"
)

// Options configures stage diagram rendering.
type Options struct {
	// Current is the stage to highlight with a filled box. Only
	// honored when Highlight is set.
	Current   pack.Stage
	Highlight bool
}

// ToDOT converts the stage sequence to Graphviz DOT format. The
// resulting string can be rendered with [RenderSVG] or [RenderPNG].
func ToDOT(opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph stages {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	stages := pack.Stages()
	for _, s := range stages {
		if opts.Highlight && s == opts.Current {
			fmt.Fprintf(&buf, "  %q [fillcolor=lightblue];\n", s.String())
			continue
		}
		fmt.Fprintf(&buf, "  %q;\n", s.String())
	}

	buf.WriteString("\n")
	for i := 0; i+1 < len(stages); i++ {
		fmt.Fprintf(&buf, "  %q -> %q;\n", stages[i].String(), stages[i+1].String())
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPNG renders a DOT graph as PNG via SVG conversion. A scale of
// 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install
// librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
