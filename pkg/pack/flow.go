package pack

import "github.com/mlindner/patchpack/pkg/patch"

// Flow places patches into rows bounded by the canvas width, walking the
// list once in its current order. Rows alternate direction: even rows
// fill left to right, odd rows right to left, so the cursor never has to
// travel back across the canvas on a wrap (boustrophedon flow).
//
// The running row height tracks each placed patch's height plus padding,
// and a wrap advances the cursor by exactly that amount, so the vertical
// gap between rows is one padding, added once per transition. Patches
// never extend past the canvas width as long as no single patch is wider
// than Width - 2*Padding.
func Flow(patches []patch.Patch, cfg Config) []patch.Patch {
	x := cfg.Padding
	y := cfg.Padding
	rowHeight := 0.0
	row := 0

	out := make([]patch.Patch, 0, len(patches))
	for _, p := range patches {
		if row%2 == 0 {
			if x+p.Width() > cfg.Width {
				// Wrap into a right-to-left row, starting flush with
				// the right edge.
				x = cfg.Width - cfg.Padding - p.Width()
				y += rowHeight
				rowHeight = 0
				row++
			}
		} else {
			x -= p.Width() + cfg.Padding
			if x < cfg.Padding {
				// Wrap into a left-to-right row.
				x = cfg.Padding
				y += rowHeight
				rowHeight = 0
				row++
			}
		}

		out = append(out, p.WithLeftTop(x, y))
		rowHeight = max(rowHeight, p.Height()+cfg.Padding)

		if row%2 == 0 {
			x += p.Width() + cfg.Padding
		}
	}
	return out
}
