// Package pgstore is a Postgres implementation of ledger.Store.
//
// It stores the same orders relation as internal/store, using a BIGSERIAL
// key (strictly increasing, never reused) and NUMERIC totals.
package pgstore

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/roach88/foodorders/internal/ledger"
)

//go:embed schema.sql
var schemaSQL string

// Store holds a pgx connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Open connects to connString (a postgres:// URL) and creates the orders
// table if it is absent.
func Open(ctx context.Context, connString string) (*Store, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close releases the pool.
func (s *Store) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}

// InsertOrder appends one row and returns the generated order_id.
func (s *Store) InsertOrder(ctx context.Context, o ledger.NewOrder) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx, `
		INSERT INTO orders (customer_name, items, total_bill)
		VALUES ($1, $2, $3::numeric)
		RETURNING order_id`,
		o.CustomerName, o.ItemsSummary, o.TotalBill.String(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}
	return id, nil
}

// ReadOrder returns ledger.ErrOrderNotFound for an unknown ID.
func (s *Store) ReadOrder(ctx context.Context, id int64) (ledger.Order, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT order_id, customer_name, items, total_bill::text
		FROM orders WHERE order_id = $1`, id)

	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return ledger.Order{}, ledger.ErrOrderNotFound
	}
	if err != nil {
		return ledger.Order{}, fmt.Errorf("read order: %w", err)
	}
	return o, nil
}

// ReadAllOrders returns every order by ascending order_id.
func (s *Store) ReadAllOrders(ctx context.Context) ([]ledger.Order, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT order_id, customer_name, items, total_bill::text
		FROM orders ORDER BY order_id`)
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
	return orders, rows.Err()
}

// ReadTotals returns total_bill of every order.
func (s *Store) ReadTotals(ctx context.Context) ([]decimal.Decimal, error) {
	rows, err := s.pool.Query(ctx, `SELECT total_bill::text FROM orders ORDER BY order_id`)
	if err != nil {
		return nil, fmt.Errorf("query totals: %w", err)
	}
	defer rows.Close()

	totals := []decimal.Decimal{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan total: %w", err)
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("parse total %q: %w", raw, err)
		}
		totals = append(totals, d)
	}
	return totals, rows.Err()
}

// ReadDistinctCustomers returns each customer once in byte order.
func (s *Store) ReadDistinctCustomers(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT DISTINCT customer_name FROM orders
		ORDER BY customer_name COLLATE "C"`)
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
	return names, rows.Err()
}

func scanOrder(row pgx.Row) (ledger.Order, error) {
	var (
		o     ledger.Order
		total string
	)
	if err := row.Scan(&o.ID, &o.CustomerName, &o.ItemsSummary, &total); err != nil {
		return ledger.Order{}, err
	}
	d, err := decimal.NewFromString(total)
	if err != nil {
		return ledger.Order{}, fmt.Errorf("parse total %q: %w", total, err)
	}
	o.TotalBill = d
	return o, nil
}

var _ ledger.Store = (*Store)(nil)
