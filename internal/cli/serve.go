package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/shelfmark/shelfmark/internal/api"
	"github.com/shelfmark/shelfmark/pkg/cache"
)

// shutdownTimeout bounds how long in-flight requests may run after a
// termination signal.
const shutdownTimeout = 10 * time.Second

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr       string // listen address
	cacheDir   string // file cache directory ("" uses the XDG default)
	redisAddr  string // redis address; when set, overrides the file cache
	layoutFile string // optional TOML geometry override
}

// serveCommand creates the serve command, exposing label generation as an
// HTTP service. Clients POST a location table to /v1/labels and receive
// the rendered PDF.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve label generation over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "render cache directory (default ~/.cache/shelfmark)")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "", "redis address for the render cache (overrides --cache-dir)")
	cmd.Flags().StringVar(&opts.layoutFile, "layout", "", "TOML file overriding the sheet geometry")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	cfg, err := resolveLayout(opts.layoutFile)
	if err != nil {
		return err
	}

	store, err := c.serveCache(ctx, opts)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := &http.Server{
		Addr:        opts.addr,
		Handler:     api.NewServer(store, cfg, c.Logger).Router(),
		BaseContext: func(_ net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	printInfo("Listening on %s", opts.addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}

// serveCache builds the cache backend for the HTTP service: redis when an
// address is given, otherwise a file cache.
func (c *CLI) serveCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	if opts.redisAddr != "" {
		c.Logger.Debug("using redis cache", "addr", opts.redisAddr)
		return cache.NewRedisCache(ctx, opts.redisAddr)
	}

	dir := opts.cacheDir
	if dir == "" {
		var err error
		if dir, err = cacheDir(); err != nil {
			return nil, err
		}
	}
	c.Logger.Debug("using file cache", "dir", dir)
	return cache.NewFileCache(dir)
}
