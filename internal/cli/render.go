package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/barchart3d/pkg/pipeline"
)

// renderFlags extends chartFlags with output settings.
type renderFlags struct {
	chartFlags

	output  string // output file (single format) or base path
	formats string // comma separated
	width   int
	height  int
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var fl renderFlags

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a 3D bar chart from a data file",
		Long: `Render reads the x, y and z columns of a CSV, TSV, XLSX or JSON file and
writes a 3D bar chart made of cuboids.

The columns are interpreted as:
  dense   x and y are per-point coordinates, z the height of each point
  sparse  x and y are axis values; z fills the grid row by row
  paired  the unique x and y values cover every pair; z follows point order`,
		Example: `  barchart3d render scores.csv
  barchart3d render scores.xlsx --sheet results -x features -y k -z accuracy
  barchart3d render scores.csv -f html,png -o out/scores --z-min 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], &fl)
		},
	}

	fl.register(cmd)
	cmd.Flags().StringVarP(&fl.output, "output", "o", "", "output file (single format) or base path (multiple formats)")
	cmd.Flags().StringVarP(&fl.formats, "format", "f", "", "output format(s): "+strings.Join(pipeline.Formats, ", ")+" (default: html)")
	cmd.Flags().IntVar(&fl.width, "width", 0, "figure width in pixels (default: renderer default)")
	cmd.Flags().IntVar(&fl.height, "height", 0, "figure height in pixels (default: renderer default)")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, fl *renderFlags) error {
	ctx := cmd.Context()

	file, err := c.loadConfig()
	if err != nil {
		return err
	}
	opts, err := fl.options(cmd, input, file)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		opts.Formats = pipeline.ParseFormats(fl.formats)
	}
	if cmd.Flags().Changed("width") {
		opts.Width = fl.width
	}
	if cmd.Flags().Changed("height") {
		opts.Height = fl.height
	}
	output := file.Render.Output
	if cmd.Flags().Changed("output") {
		output = fl.output
	}
	opts.Logger = c.Logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, fl.noCache, file)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	result, err := c.execute(ctx, runner, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	paths := outputPaths(output, input, opts.Formats)
	for _, format := range opts.Formats {
		if err := writeOutput(paths[format], result.Artifacts[format]); err != nil {
			return err
		}
		printFile(out, paths[format])
	}
	printStats(out, result.Stats, result.CacheInfo)
	if result.Stats.Dropped > 0 {
		printWarning(out, "%s did not fit the %dx%d grid and were dropped",
			plural(result.Stats.Dropped, "z value"), result.Stats.UniqueX, result.Stats.UniqueY)
	}
	prog.done(fmt.Sprintf("Rendered %s", plural(len(opts.Formats), "file")), "input", input)
	return nil
}

// execute runs the pipeline, showing a spinner when a rasterized format
// makes rendering slow.
func (c *CLI) execute(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options) (*pipeline.Result, error) {
	if !slices.Contains(opts.Formats, pipeline.FormatPNG) && !slices.Contains(opts.Formats, pipeline.FormatPDF) {
		return runner.Execute(ctx, opts)
	}
	spin := newSpinner(ctx, os.Stderr, "Rendering "+opts.Input)
	spin.Start()
	defer spin.Stop()
	return runner.Execute(ctx, opts)
}

// outputPaths maps each format to its output file. A single format with an
// explicit output writes exactly there; otherwise files share a base path
// and get the format's extension.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + pipeline.Extension(f)
	}
	return paths
}

// basePath derives the base output path. Without an output it is the input
// path minus its extension; a known format extension on the output is
// stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	longest := ""
	for _, f := range pipeline.Formats {
		if ext := pipeline.Extension(f); strings.HasSuffix(output, ext) && len(ext) > len(longest) {
			longest = ext
		}
	}
	return strings.TrimSuffix(output, longest)
}

// writeOutput writes data to path, creating parent directories.
func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
