package ledger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/roach88/foodorders/internal/cart"
)

// Observer is notified about commit outcomes. Used for metrics.
type Observer interface {
	OrderCommitted(o Order)
	CommitRejected(field string)
}

type noopObserver struct{}

func (noopObserver) OrderCommitted(Order)  {}
func (noopObserver) CommitRejected(string) {}

// Option configures a Ledger.
type Option func(*Ledger)

// WithLogger sets the logger. Defaults to discarding output.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithObserver registers an observer for commit outcomes.
func WithObserver(o Observer) Option {
	return func(l *Ledger) {
		if o != nil {
			l.observer = o
		}
	}
}

// Ledger is the append-only collection of committed orders.
type Ledger struct {
	store    Store
	mu       sync.Mutex // serializes Commit
	logger   *slog.Logger
	observer Observer
}

// New creates a ledger over store. The caller keeps ownership of store
// and closes it after the ledger is no longer used.
func New(store Store, opts ...Option) *Ledger {
	l := &Ledger{
		store:    store,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		observer: noopObserver{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Commit validates customer and c, appends a new order, and resets c.
//
// On a validation error (*cart.ValidationError) or a store error, neither
// the ledger nor the cart is modified.
func (l *Ledger) Commit(ctx context.Context, customer string, c *cart.Cart) (Order, error) {
	if err := c.Validate(customer); err != nil {
		var vErr *cart.ValidationError
		if errors.As(err, &vErr) {
			l.observer.CommitRejected(vErr.Field)
		}
		l.logger.Debug("order rejected", "error", err)
		return Order{}, err
	}

	rec := NewOrder{
		CustomerName: NormalizeCustomerName(customer),
		ItemsSummary: c.ItemsSummary(),
		TotalBill:    c.Total(),
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	id, err := l.store.InsertOrder(ctx, rec)
	if err != nil {
		return Order{}, fmt.Errorf("commit order: %w", err)
	}
	c.Reset()

	o := Order{
		ID:           id,
		CustomerName: rec.CustomerName,
		ItemsSummary: rec.ItemsSummary,
		TotalBill:    rec.TotalBill,
	}
	l.logger.Info("order committed",
		"order_id", o.ID,
		"customer", o.CustomerName,
		"items", o.ItemsSummary,
		"total", o.TotalBill.String(),
	)
	l.observer.OrderCommitted(o)
	return o, nil
}

// TotalRevenue sums TotalBill over all committed orders. Zero when empty.
func (l *Ledger) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	totals, err := l.store.ReadTotals(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total revenue: %w", err)
	}
	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t)
	}
	return sum, nil
}

// DistinctCustomers returns each customer name once, in binary order.
// The result is empty, never nil, for an empty ledger.
func (l *Ledger) DistinctCustomers(ctx context.Context) ([]string, error) {
	names, err := l.store.ReadDistinctCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("distinct customers: %w", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// AllOrders returns every committed order in insertion order.
func (l *Ledger) AllOrders(ctx context.Context) ([]Order, error) {
	orders, err := l.store.ReadAllOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("all orders: %w", err)
	}
	if orders == nil {
		orders = []Order{}
	}
	return orders, nil
}

// Order returns the order with the given ID, or an error matching
// ErrOrderNotFound.
func (l *Ledger) Order(ctx context.Context, id int64) (Order, error) {
	o, err := l.store.ReadOrder(ctx, id)
	if err != nil {
		return Order{}, fmt.Errorf("order %d: %w", id, err)
	}
	return o, nil
}
