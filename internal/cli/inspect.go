package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/barchart3d/pkg/chart"
	"github.com/matzehuels/barchart3d/pkg/pipeline"
)

// maxListed caps how many categories inspect prints per axis.
const maxListed = 8

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var fl chartFlags

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show how a data file would be charted",
		Long: `Inspect loads a data file and classifies its columns without rendering.
It reports the mode (dense, sparse or paired), the grid size, the baseline
and how many bars are visible, placeholders or dropped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd, args[0], &fl)
		},
	}
	fl.register(cmd)
	return cmd
}

func (c *CLI) runInspect(cmd *cobra.Command, input string, fl *chartFlags) error {
	ctx := cmd.Context()

	file, err := c.loadConfig()
	if err != nil {
		return err
	}
	opts, err := fl.options(cmd, input, file)
	if err != nil {
		return err
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

	series, hit, err := runner.LoadWithCacheInfo(ctx, opts)
	if err != nil {
		return err
	}
	scene, err := runner.Build(ctx, series, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, StyleTitle.Render(input))
	fmt.Fprintln(out, summaryTable(series, scene, hit))
	if scene.Stats.Dropped > 0 {
		printWarning(out, "%s did not fit the grid and would be dropped", plural(scene.Stats.Dropped, "z value"))
	}
	return nil
}

// summaryTable renders the classification of a series as a two-column table.
func summaryTable(s *pipeline.Series, scene *chart.Scene, cached bool) string {
	source := iconFresh
	if cached {
		source = iconCached
	}
	rows := [][]string{
		{"mode", scene.Mode.String()},
		{"points", fmt.Sprintf("x %d · y %d · z %d", len(s.X), len(s.Y), len(s.Z))},
		{"x categories", categories(scene.XAxis, scene.Stats.UniqueX)},
		{"y categories", categories(scene.YAxis, scene.Stats.UniqueY)},
		{"grid", fmt.Sprintf("%d x %d", scene.Stats.UniqueX, scene.Stats.UniqueY)},
		{"baseline", chart.FormatNumber(scene.Baseline)},
		{"top", chart.FormatNumber(scene.Top())},
		{"visible", fmt.Sprint(scene.Stats.Visible)},
		{"placeholders", fmt.Sprint(scene.Stats.Placeholders)},
		{"dropped", fmt.Sprint(scene.Stats.Dropped)},
		{"series", source},
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("property", "value").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case col == 0:
				return styleCell.Foreground(colorGray)
			}
			return styleCell
		})
	for _, r := range rows {
		t.Row(r...)
	}
	return t.String()
}

// categories lists an axis' tick labels, eliding the middle of long lists.
func categories(a chart.Axis, n int) string {
	labels := a.TickText
	if len(labels) > maxListed {
		head := labels[:maxListed/2]
		tail := labels[len(labels)-maxListed/2:]
		labels = append(append(append([]string(nil), head...), "…"), tail...)
	}
	return fmt.Sprintf("%d: %s", n, strings.Join(labels, ", "))
}
