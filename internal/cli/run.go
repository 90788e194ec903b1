package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mlindner/patchpack/pkg/pipeline"
)

// runOpts holds the command-line flags for the run command.
type runOpts struct {
	output  string  // output file (single format) or base path (multiple)
	cols    int     // grid columns
	rows    int     // grid rows
	width   float64 // canvas width
	height  float64 // canvas height
	padding float64 // padding between patches, -1 means use config
	seed    uint64  // generation seed
	stage   string  // stage to stop at, empty means terminal
	labels  bool    // draw patch ids in SVG output
	noCache bool    // disable caching
	refresh bool    // bypass cached results
}

// runCommand creates the run command, which executes the packing
// pipeline once and writes the requested artifacts.
func (c *CLI) runCommand() *cobra.Command {
	var formatsStr string
	opts := runOpts{padding: -1}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the packing pipeline and write artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeOpts := pipeline.Options{
				Cols:    opts.cols,
				Rows:    opts.rows,
				Width:   opts.width,
				Height:  opts.height,
				Padding: opts.padding,
				Seed:    opts.seed,
				Stage:   opts.stage,
				Formats: parseFormats(formatsStr),
				Labels:  opts.labels,
				Refresh: opts.refresh,
				Logger:  c.Logger,
			}
			c.applyConfig(&pipeOpts)

			runner, err := c.newRunner(cmd.Context(), opts.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			prog := newProgress(c.Logger)
			result, err := runner.Execute(withLogger(cmd.Context(), c.Logger), pipeOpts)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Packed %d patches", result.Stats.PatchCount))

			written, err := writeArtifacts(result.Artifacts, pipeOpts.Formats, opts.output)
			if err != nil {
				return err
			}

			printSuccess("Rendered %s stage", result.Stage)
			printStats(result.Stats.PatchCount, result.Stage.String(), result.CacheInfo.LayoutHit)
			for _, path := range written {
				printFile(path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().IntVar(&opts.cols, "cols", 0, "grid columns (default from config)")
	cmd.Flags().IntVar(&opts.rows, "rows", 0, "grid rows (default from config)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "canvas width (default from config)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "canvas height (default from config)")
	cmd.Flags().Float64Var(&opts.padding, "padding", -1, "patch padding (default from config)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "generation seed (default from config)")
	cmd.Flags().StringVar(&opts.stage, "stage", "", "stage to stop at: initial, uprighted, sorted, flowed, packed (default)")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "draw patch ids in SVG output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when cached")

	return cmd
}

// writeArtifacts writes each rendered artifact to disk and returns the
// written paths in format order.
func writeArtifacts(artifacts map[string][]byte, formats []string, output string) ([]string, error) {
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := artifactPath(output, format, len(formats) == 1)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// artifactPath derives the output path for a format. With a single
// format an explicit output is used verbatim; otherwise the format
// extension is appended to the base path.
func artifactPath(output, format string, single bool) string {
	if output == "" {
		return appName + "." + format
	}
	if single {
		return output
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		output = strings.TrimSuffix(output, ext)
	}
	return output + "." + format
}
