package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mlindner/patchpack/pkg/pack"
	"github.com/mlindner/patchpack/pkg/render/stagegraph"
)

// stagesCommand creates the stages command, which lists the pipeline
// stages or renders them as a diagram.
func (c *CLI) stagesCommand() *cobra.Command {
	var (
		format  string
		output  string
		current string
	)

	cmd := &cobra.Command{
		Use:   "stages",
		Short: "List the pipeline stages or render them as a diagram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts stagegraph.Options
			if current != "" {
				stage, ok := pack.ParseStage(current)
				if !ok {
					return fmt.Errorf("unknown stage %q", current)
				}
				opts.Current = stage
				opts.Highlight = true
			}

			if format == "" {
				for _, s := range pack.Stages() {
					marker := " "
					if opts.Highlight && s == opts.Current {
						marker = StyleSuccess.Render("*")
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s %d. %s\n", marker, int(s)+1, s)
				}
				return nil
			}

			dot := stagegraph.ToDOT(opts)

			spin := newSpinnerWithContext(cmd.Context(), "Rendering stage diagram...")
			spin.Start()

			var (
				data []byte
				err  error
			)
			switch strings.ToLower(format) {
			case "dot":
				data = []byte(dot)
			case "svg":
				data, err = stagegraph.RenderSVG(dot)
			case "png":
				data, err = stagegraph.RenderPNG(dot, 2.0)
			default:
				spin.Stop()
				return fmt.Errorf("unknown diagram format %q (supported: dot, svg, png)", format)
			}
			spin.Stop()
			if err != nil {
				return err
			}

			if output == "" {
				output = "stages." + strings.ToLower(format)
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "diagram format: dot, svg, or png (default: plain list)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file for the diagram")
	cmd.Flags().StringVar(&current, "current", "", "stage to highlight in the diagram")

	return cmd
}
