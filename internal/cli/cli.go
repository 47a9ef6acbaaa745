// Package cli implements the shelfmark command-line interface.
//
// This package provides commands for generating printable label sheets from
// warehouse location tables, serving the generator over HTTP, and managing
// the render cache. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Render a location table (CSV or XLSX) into a PDF label sheet
//   - serve: Expose label generation as an HTTP service
//   - cache: Manage the QR and render cache
//
// # Example
//
//	import "github.com/shelfmark/shelfmark/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/shelfmark/shelfmark/pkg/buildinfo"
	"github.com/shelfmark/shelfmark/pkg/cache"
	"github.com/shelfmark/shelfmark/pkg/errors"
	"github.com/shelfmark/shelfmark/pkg/layout"
	"github.com/shelfmark/shelfmark/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "shelfmark"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "shelfmark",
		Short:        "Shelfmark turns warehouse location tables into printable label sheets",
		Long:         `Shelfmark reads warehouse location tables (CSV or XLSX) and renders them as paginated PDF label sheets with QR codes, zone headers, and color-coded backgrounds, ready for Avery-style sticker paper.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) *pipeline.Runner {
	return pipeline.NewRunner(newCache(noCache), c.Logger)
}

func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}

// cacheDir returns the cache directory using XDG standard (~/.cache/shelfmark/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// resolveLayout loads a geometry file when one is given, otherwise the
// built-in US Letter defaults, and validates the grid either way.
func resolveLayout(path string) (layout.Config, error) {
	cfg := layout.Default()
	if path != "" {
		var err error
		if cfg, err = layout.Load(path); err != nil {
			return layout.Config{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return layout.Config{}, err
	}
	return cfg, nil
}

// friendlyError reduces a structured error to its user-facing message for
// terminal display. The full chain still reaches the logger in debug mode.
func friendlyError(err error) string {
	return errors.UserMessage(err)
}
