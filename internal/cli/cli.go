// Package cli implements the barchart3d command-line interface.
//
// # Commands
//
//   - render: build a 3D bar chart from a data file and write it as HTML,
//     plotly JSON, ECharts HTML, SVG, PNG or PDF
//   - inspect: show how a data file is classified without rendering it
//   - cache: manage the artifact cache
//   - completion: generate shell completion scripts
//
// # Configuration
//
// Options come from three layers: built-in defaults, an option file
// (--config, or barchart3d.toml / barchart3d.yaml in the working directory)
// and command line flags. Flags win.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/barchart3d/pkg/buildinfo"
	"github.com/matzehuels/barchart3d/pkg/cache"
	"github.com/matzehuels/barchart3d/pkg/config"
	"github.com/matzehuels/barchart3d/pkg/observability"
	"github.com/matzehuels/barchart3d/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "barchart3d"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
	LogWarn  = log.WarnLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath is the --config flag; empty means discover.
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level. At debug level pipeline and cache
// events are logged too.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		hooks := observability.NewLogHooks(c.Logger)
		observability.SetPipelineHooks(hooks)
		observability.SetCacheHooks(hooks)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "barchart3d renders 3D bar charts from tabular data",
		Long:          `barchart3d turns x, y and z columns of a CSV, TSV, XLSX or JSON file into a 3D bar chart made of cuboids, rendered as an interactive page, a plotly figure or a static image.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "option file (.toml or .yaml); default: barchart3d.toml or barchart3d.yaml if present")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Option File
// =============================================================================

// loadConfig reads the option file named by --config, or a discovered one.
// Without either it returns an empty file.
func (c *CLI) loadConfig() (*config.File, error) {
	path := c.configPath
	if path == "" {
		found, ok := config.Discover(".")
		if !ok {
			return &config.File{}, nil
		}
		path = found
	}
	f, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded option file", "path", path)
	return f, nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool, f *config.File) (*pipeline.Runner, error) {
	store, err := c.openCache(ctx, noCache, f)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, f.Cache.Keyer(), c.Logger), nil
}

func (c *CLI) openCache(ctx context.Context, noCache bool, f *config.File) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	store, err := f.Cache.Open(ctx)
	if err != nil {
		if f.Cache.Backend == config.BackendRedis {
			return nil, err
		}
		// An unusable cache directory only disables caching.
		c.Logger.Warn("cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return store, nil
}
