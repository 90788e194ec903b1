package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mlindner/patchpack/pkg/pack"
)

// watchCommand creates the watch command, an interactive terminal
// viewer that steps through the packing stages with animated
// transitions.
func (c *CLI) watchCommand() *cobra.Command {
	var (
		cols    int
		rows    int
		width   float64
		height  float64
		padding float64
		seed    uint64
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Step through the packing stages interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := pack.Config{
				Cols:    cols,
				Rows:    rows,
				Width:   width,
				Height:  height,
				Padding: padding,
			}
			if cfg.Cols == 0 {
				cfg.Cols = c.Config.Grid.Cols
			}
			if cfg.Rows == 0 {
				cfg.Rows = c.Config.Grid.Rows
			}
			if cfg.Width == 0 {
				cfg.Width = c.Config.Canvas.Width
			}
			if cfg.Height == 0 {
				cfg.Height = c.Config.Canvas.Height
			}
			if cfg.Padding < 0 {
				cfg.Padding = c.Config.Canvas.Padding
			}
			if seed == 0 {
				seed = c.Config.Pack.Seed
			}

			model, err := NewWatchModel(cfg, seed)
			if err != nil {
				return err
			}

			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return err
			}
			if m, ok := final.(WatchModel); ok && m.Err() != nil {
				return m.Err()
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&cols, "cols", 0, "grid columns (default from config)")
	cmd.Flags().IntVar(&rows, "rows", 0, "grid rows (default from config)")
	cmd.Flags().Float64Var(&width, "width", 0, "canvas width (default from config)")
	cmd.Flags().Float64Var(&height, "height", 0, "canvas height (default from config)")
	cmd.Flags().Float64Var(&padding, "padding", -1, "patch padding (default from config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "generation seed (default from config)")

	return cmd
}
