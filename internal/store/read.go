package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/roach88/foodorders/internal/ledger"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (ledger.Order, error) {
	var o ledger.Order
	if err := row.Scan(&o.ID, &o.CustomerName, &o.ItemsSummary, &o.TotalBill); err != nil {
		return ledger.Order{}, err
	}
	return o, nil
}

// ReadOrder retrieves a single order by ID.
// Returns an error wrapping ledger.ErrOrderNotFound if absent.
func (s *Store) ReadOrder(ctx context.Context, id int64) (ledger.Order, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT order_id, customer_name, items, total_bill
		FROM orders
		WHERE order_id = ?
	`, id)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ledger.Order{}, ledger.ErrOrderNotFound
	}
	if err != nil {
		return ledger.Order{}, fmt.Errorf("read order: %w", err)
	}
	return o, nil
}

// ReadAllOrders returns all orders in insertion order.
// Returns an empty slice (not nil) if there are none.
func (s *Store) ReadAllOrders(ctx context.Context) ([]ledger.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT order_id, customer_name, items, total_bill
		FROM orders
		ORDER BY order_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	orders := []ledger.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}

	return orders, nil
}

// ReadTotals returns total_bill of every order in insertion order.
// Summing happens in decimal on the caller side rather than with SQL SUM,
// which would go through floating point for non-integer amounts.
func (s *Store) ReadTotals(ctx context.Context) ([]decimal.Decimal, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT total_bill FROM orders ORDER BY order_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query totals: %w", err)
	}
	defer rows.Close()

	totals := []decimal.Decimal{}
	for rows.Next() {
		var d decimal.Decimal
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan total: %w", err)
		}
		totals = append(totals, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate totals: %w", err)
	}

	return totals, nil
}

// ReadDistinctCustomers returns each customer name once, in binary order.
func (s *Store) ReadDistinctCustomers(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT customer_name
		FROM orders
		ORDER BY customer_name COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}

	return names, nil
}

var _ ledger.Store = (*Store)(nil)
