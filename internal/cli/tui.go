package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mlindner/patchpack/pkg/pack"
	"github.com/mlindner/patchpack/pkg/patch"
	"github.com/mlindner/patchpack/pkg/render"
)

// Animation parameters for stage transitions.
const (
	animFrameInterval = 33 * time.Millisecond
	animDuration      = 600 * time.Millisecond
)

// patchPalette cycles background colors so adjacent patches stay
// distinguishable in the terminal raster.
var patchPalette = []lipgloss.Color{
	lipgloss.Color("36"), lipgloss.Color("35"), lipgloss.Color("75"),
	lipgloss.Color("220"), lipgloss.Color("167"), lipgloss.Color("140"),
	lipgloss.Color("109"), lipgloss.Color("173"),
}

// tickMsg drives the stage transition animation.
type tickMsg time.Time

func animTick() tea.Cmd {
	return tea.Tick(animFrameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// WatchModel is the bubbletea model for the interactive stage viewer.
// It owns a pipeline and animates each advance by interpolating between
// the previous and current layouts.
type WatchModel struct {
	pipeline *pack.Pipeline
	cfg      pack.Config
	seed     uint64

	animating bool
	animStart time.Time

	width  int
	height int

	err error
}

// NewWatchModel creates a viewer over a freshly seeded pipeline.
func NewWatchModel(cfg pack.Config, seed uint64) (WatchModel, error) {
	pl, err := pack.NewSeeded(cfg, seed)
	if err != nil {
		return WatchModel{}, err
	}
	return WatchModel{
		pipeline: pl,
		cfg:      cfg,
		seed:     seed,
		width:    80,
		height:   24,
	}, nil
}

func (m WatchModel) Init() tea.Cmd {
	return nil
}

func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "enter", "n":
			if m.animating || m.pipeline.Done() {
				return m, nil
			}
			m.pipeline.Advance()
			m.animating = true
			m.animStart = time.Now()
			return m, animTick()
		case "r":
			// Restart with the next seed for a fresh layout.
			m.seed++
			pl, err := pack.NewSeeded(m.cfg, m.seed)
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.pipeline = pl
			m.animating = false
			return m, nil
		}
	case tickMsg:
		if !m.animating {
			return m, nil
		}
		if time.Since(m.animStart) >= animDuration {
			m.animating = false
			return m, nil
		}
		return m, animTick()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// progress returns the current animation progress in [0,1].
func (m WatchModel) progress() float64 {
	if !m.animating {
		return 1
	}
	return float64(time.Since(m.animStart)) / float64(animDuration)
}

// framePatches returns the patch list to draw for the current frame,
// interpolated mid-animation.
func (m WatchModel) framePatches() []patch.Patch {
	current := m.pipeline.Patches()
	previous := m.pipeline.Previous()
	if !m.animating || previous == nil {
		return current
	}
	return render.Interpolate(previous, current, m.progress())
}

func (m WatchModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Patchpack"))
	b.WriteString(StyleDim.Render("  ·  " + m.pipeline.StageName()))
	b.WriteString("\n")
	if m.pipeline.Done() {
		b.WriteString(StyleDim.Render("space advance (done)  r restart  q quit"))
	} else {
		b.WriteString(StyleDim.Render("space advance  r restart  q quit"))
	}
	b.WriteString("\n\n")

	cols := m.width
	rows := m.height - 5
	if cols < 10 {
		cols = 10
	}
	if rows < 5 {
		rows = 5
	}
	b.WriteString(rasterize(m.framePatches(), m.cfg, cols, rows))

	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [stage %d/%d]  seed %d",
		int(m.pipeline.Stage())+1, len(pack.Stages()), m.seed)))

	return b.String()
}

// Err returns the error that terminated the viewer, if any.
func (m WatchModel) Err() error {
	return m.err
}

// rasterize paints the layout onto a cols x rows character grid, each
// patch as a colored block with its id at the center. Terminal cells
// are roughly twice as tall as wide, which the vertical scale absorbs.
func rasterize(patches []patch.Patch, cfg pack.Config, cols, rows int) string {
	sx := float64(cols) / cfg.Width
	sy := float64(rows) / cfg.Height

	// owner[row][col] holds the index of the patch covering the cell,
	// or -1 for empty canvas. cells holds the character drawn there.
	owner := make([][]int, rows)
	cells := make([][]rune, rows)
	for y := range owner {
		owner[y] = make([]int, cols)
		cells[y] = make([]rune, cols)
		for x := range owner[y] {
			owner[y][x] = -1
			cells[y][x] = ' '
		}
	}

	for i, p := range patches {
		x0, x1 := clampCell(p.Left()*sx, cols), clampCell(p.Right()*sx, cols)
		y0, y1 := clampCell(p.Top()*sy, rows), clampCell(p.Bottom()*sy, rows)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				owner[y][x] = i
				cells[y][x] = ' '
			}
		}

		// Patch id centered on the patch, truncated to what fits.
		label := []rune(fmt.Sprintf("%d", p.ID))
		if len(label) > x1-x0+1 {
			label = label[:x1-x0+1]
		}
		cy := clampCell(p.Center.Y*sy, rows)
		lx := (x0 + x1 + 1 - len(label)) / 2
		for j, r := range label {
			cells[cy][lx+j] = r
		}
	}

	var b strings.Builder
	for y := 0; y < rows; y++ {
		// Group runs of cells with the same owner so each row renders
		// with a handful of style calls instead of one per cell.
		x := 0
		for x < cols {
			idx := owner[y][x]
			run := x
			for run < cols && owner[y][run] == idx {
				run++
			}
			if idx < 0 {
				b.WriteString(string(cells[y][x:run]))
			} else {
				style := lipgloss.NewStyle().Background(patchPalette[patches[idx].ID%len(patchPalette)])
				b.WriteString(style.Render(string(cells[y][x:run])))
			}
			x = run
		}
		b.WriteString("\n")
	}
	return b.String()
}

func clampCell(v float64, n int) int {
	c := int(v)
	if c < 0 {
		return 0
	}
	if c >= n {
		return n - 1
	}
	return c
}
