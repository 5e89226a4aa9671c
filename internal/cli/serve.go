package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pixelextrude/internal/api"
	"github.com/matzehuels/pixelextrude/pkg/pipeline"
)

const shutdownTimeout = 10 * time.Second

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		config  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the extrusion over HTTP",
		Long: `Serve runs an HTTP API. POST an SVG to /v1/extrude and receive the
extruded document; query parameters override the defaults (or the values
from --config).`,
		Example: `  pixelextrude serve --addr :9000
  curl --data-binary @hat.svg 'localhost:9000/v1/extrude?mode=body&depth=6'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base := pipeline.DefaultOptions()
			if config != "" {
				var err error
				if base, err = pipeline.LoadConfig(config); err != nil {
					return err
				}
			}
			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()
			return c.serve(cmd.Context(), addr, api.NewServer(runner, base, c.Logger).Handler())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&config, "config", "", "TOML file with default extrusion settings")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// serve runs handler on addr until ctx is cancelled, then shuts down
// gracefully.
func (c *CLI) serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return withLogger(context.Background(), c.Logger)
		},
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
