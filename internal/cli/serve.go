package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/foodorders/internal/server"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Addr string

	// IDs overrides the cart session ID generator (for testing).
	IDs server.IDGenerator
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API over HTTP",
		Long: `Serve the menu, cart sessions and order ledger as a JSON API.

Cart sessions live in memory; placed orders are written to the
configured database. Prometheus metrics are exposed at /metrics.

Example:
  foodorders serve --addr :8080
  foodorders serve --db postgres://localhost/foodorders -v`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", "", "listen address (overrides config, default :8080)")

	return cmd
}

func runServe(opts *ServeOptions, cmd *cobra.Command) error {
	ctx, cancel := context.WithCancel(commandContext(cmd))
	defer cancel()

	sess, err := openSession(ctx, opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	addr := sess.cfg.Server.Addr
	if opts.Addr != "" {
		addr = opts.Addr
	}

	srv, err := server.New(server.Options{
		Catalog: sess.catalog,
		Ledger:  sess.ledger,
		Metrics: sess.metrics.Handler(),
		IDs:     opts.IDs,
		Logger:  sess.logger,
	})
	if err != nil {
		return WrapExitError(ExitFailure, "failed to create server", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			sess.logger.Info("received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	fmt.Fprintf(cmd.OutOrStdout(), "Serving on %s. Press Ctrl-C to stop.\n", addr)
	if err := srv.Run(ctx, addr); err != nil {
		return WrapExitError(ExitFailure, "server error", err)
	}

	sess.logger.Info("server stopped gracefully")
	return nil
}
