package render

import (
	"strings"
	"testing"

	"github.com/mlindner/patchpack/pkg/geom"
	"github.com/mlindner/patchpack/pkg/pack"
	"github.com/mlindner/patchpack/pkg/patch"
)

func testPatches() []patch.Patch {
	return []patch.Patch{
		{ID: 0, Center: geom.Point{X: 24, Y: 19}, Extent: geom.Size{Width: 40, Height: 30}},
		{ID: 1, Center: geom.Point{X: 68, Y: 14}, Extent: geom.Size{Width: 40, Height: 20}},
	}
}

func testConfig() pack.Config {
	return pack.Config{Cols: 2, Rows: 1, Width: 100, Height: 100, Padding: 4}
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(testPatches(), testConfig()))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Fatalf("missing svg root element: %s", svg[:60])
	}
	if !strings.Contains(svg, `viewBox="0 0 100.0 100.0"`) {
		t.Error("viewBox should match the configured canvas")
	}
	if !strings.Contains(svg, `id="patch-0" x="4.00" y="4.00" width="40.00" height="30.00"`) {
		t.Error("patch 0 rect missing or misplaced")
	}
	if !strings.Contains(svg, `id="patch-1" x="48.00" y="4.00" width="40.00" height="20.00"`) {
		t.Error("patch 1 rect missing or misplaced")
	}
	if strings.Contains(svg, "<text") {
		t.Error("labels should be off by default")
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("document not closed")
	}
}

func TestRenderSVGLabelsAndCaption(t *testing.T) {
	svg := string(RenderSVG(testPatches(), testConfig(), WithLabels(), WithCaption("Flowed")))

	if !strings.Contains(svg, `>0</text>`) || !strings.Contains(svg, `>1</text>`) {
		t.Error("labels missing")
	}
	if !strings.Contains(svg, ">Flowed</text>") {
		t.Error("caption missing")
	}
}

func TestRenderSVGGrowsForOverflow(t *testing.T) {
	overflow := []patch.Patch{
		{ID: 0, Center: geom.Point{X: 50, Y: 140}, Extent: geom.Size{Width: 40, Height: 40}},
	}
	svg := string(RenderSVG(overflow, testConfig()))

	// Bottom edge at 160 plus padding.
	if !strings.Contains(svg, `viewBox="0 0 100.0 164.0"`) {
		t.Errorf("viewBox should grow past the canvas height: %s", svg[:120])
	}
}

func TestRenderSVGCustomColors(t *testing.T) {
	svg := string(RenderSVG(testPatches(), testConfig(), WithFill("#ff0000"), WithStroke("#00ff00")))
	if !strings.Contains(svg, `fill="#ff0000"`) || !strings.Contains(svg, `stroke="#00ff00"`) {
		t.Error("color overrides not applied")
	}
}

func TestRenderSVGEmpty(t *testing.T) {
	svg := string(RenderSVG(nil, testConfig()))
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "</svg>") {
		t.Error("empty layout should still produce a valid document")
	}
}
