package render

import (
	"bytes"
	"fmt"

	"github.com/mlindner/patchpack/pkg/pack"
	"github.com/mlindner/patchpack/pkg/patch"
)

// defaultFill matches the translucent grey used by the interactive
// viewer, so CLI artifacts and the watch view agree.
const defaultFill = "rgba(60,60,60,0.5)"

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	labels  bool
	caption string
	fill    string
	stroke  string
}

// WithLabels draws each patch's id at its center.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithCaption draws a caption (typically the stage name) in the top-left
// corner.
func WithCaption(s string) SVGOption { return func(r *svgRenderer) { r.caption = s } }

// WithFill overrides the patch fill color.
func WithFill(c string) SVGOption { return func(r *svgRenderer) { r.fill = c } }

// WithStroke overrides the patch outline color.
func WithStroke(c string) SVGOption { return func(r *svgRenderer) { r.stroke = c } }

// RenderSVG renders a patch layout as an SVG document sized from cfg.
// Layouts that extend past the configured canvas height (row flow can
// overflow when patches are large relative to the canvas) grow the
// viewBox so nothing is clipped.
func RenderSVG(patches []patch.Patch, cfg pack.Config, opts ...SVGOption) []byte {
	r := svgRenderer{fill: defaultFill, stroke: "#222222"}
	for _, opt := range opts {
		opt(&r)
	}

	height := cfg.Height
	for _, p := range patches {
		if b := p.Bottom() + cfg.Padding; b > height {
			height = b
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		cfg.Width, height, cfg.Width, height)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="white"/>`+"\n")

	for _, p := range patches {
		fmt.Fprintf(&buf, `  <rect id="patch-%d" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s"/>`+"\n",
			p.ID, p.Left(), p.Top(), p.Width(), p.Height(), r.fill, r.stroke)
	}

	if r.labels {
		for _, p := range patches {
			fmt.Fprintf(&buf, `  <text x="%.2f" y="%.2f" font-size="10" fill="white" text-anchor="middle" dominant-baseline="central">%d</text>`+"\n",
				p.Center.X, p.Center.Y, p.ID)
		}
	}

	if r.caption != "" {
		fmt.Fprintf(&buf, `  <text x="8" y="18" font-size="14" fill="#333333">%s</text>`+"\n", r.caption)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
