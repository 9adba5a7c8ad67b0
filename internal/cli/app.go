package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/roach88/foodorders/internal/cart"
	"github.com/roach88/foodorders/internal/config"
	"github.com/roach88/foodorders/internal/ledger"
	"github.com/roach88/foodorders/internal/menu"
	"github.com/roach88/foodorders/internal/metrics"
	"github.com/roach88/foodorders/internal/pgstore"
	"github.com/roach88/foodorders/internal/store"
)

// settings resolves the config file, environment and global flags, and
// builds the logger every command writes to.
func settings(opts *RootOptions, cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(opts.ConfigPath, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}
	cfg.Merge(&config.Config{Database: opts.Database, MenuFile: opts.MenuFile})

	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "invalid config", err)
	}
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return cfg, logger, nil
}

// loadCatalog returns the configured menu, or the built-in one.
func loadCatalog(cfg *config.Config, logger *slog.Logger) (*menu.Catalog, error) {
	if cfg.MenuFile == "" {
		return menu.Default(), nil
	}
	catalog, err := menu.LoadFile(cfg.MenuFile)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load menu", err)
	}
	logger.Debug("menu loaded", "path", cfg.MenuFile, "items", catalog.Len())
	return catalog, nil
}

// session bundles what the order-taking commands need.
type session struct {
	cfg     *config.Config
	logger  *slog.Logger
	catalog *menu.Catalog
	ledger  *ledger.Ledger
	metrics *metrics.Recorder
	close   func() error
}

// openSession loads the menu and opens the configured store.
func openSession(ctx context.Context, opts *RootOptions, cmd *cobra.Command) (*session, error) {
	cfg, logger, err := settings(opts, cmd)
	if err != nil {
		return nil, err
	}
	catalog, err := loadCatalog(cfg, logger)
	if err != nil {
		return nil, err
	}

	var (
		st      ledger.Store
		closeFn func() error
	)
	if cfg.UsesPostgres() {
		logger.Debug("opening postgres store")
		pg, err := pgstore.Open(ctx, cfg.Database)
		if err != nil {
			return nil, WrapExitError(ExitFailure, "failed to open database", err)
		}
		st, closeFn = pg, pg.Close
	} else {
		logger.Debug("opening sqlite store", "path", cfg.Database)
		sq, err := store.Open(cfg.Database)
		if err != nil {
			return nil, WrapExitError(ExitFailure, "failed to open database", err)
		}
		st, closeFn = sq, sq.Close
	}

	rec := metrics.NewRecorder()
	return &session{
		cfg:     cfg,
		logger:  logger,
		catalog: catalog,
		ledger:  ledger.New(st, ledger.WithLogger(logger), ledger.WithObserver(rec)),
		metrics: rec,
		close:   closeFn,
	}, nil
}

func (s *session) Close() {
	if err := s.close(); err != nil {
		s.logger.Error("error closing database", "error", err)
	}
}

// fillCart adds every named item, stopping at the first unknown one.
func fillCart(catalog *menu.Catalog, items []string) (*cart.Cart, error) {
	c := cart.New(catalog)
	for _, name := range items {
		if err := c.AddItem(name); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// Text renderings shared by the one-shot commands and the shell.

func menuText(entries []menu.Entry) string {
	var b strings.Builder
	b.WriteString("Menu:")
	for _, e := range entries {
		fmt.Fprintf(&b, "\n  %s", e.Label())
	}
	return b.String()
}

func lineText(l cart.LineItem) string {
	return fmt.Sprintf("%s - $%s (%s)", l.ItemName, l.UnitPrice.String(), l.Category)
}

func totalBillText(total decimal.Decimal) string {
	return "Total Bill: $" + total.String()
}

func placedText(o ledger.Order) string {
	return fmt.Sprintf("Order placed successfully for %s!\nTotal: $%s", o.CustomerName, o.TotalBill.String())
}

func revenueText(total decimal.Decimal) string {
	return "Total Revenue Generated: $" + total.String()
}

func customersText(names []string) string {
	if len(names) == 0 {
		return "No customers have placed an order yet."
	}
	return "Customers who have placed orders:\n" + strings.Join(names, "\n")
}

func ordersText(orders []ledger.Order) string {
	if len(orders) == 0 {
		return "No orders yet."
	}
	var b strings.Builder
	for i, o := range orders {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "#%d %s: %s ($%s)", o.ID, o.CustomerName, o.ItemsSummary, o.TotalBill.String())
	}
	return b.String()
}
