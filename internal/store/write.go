package store

import (
	"context"
	"fmt"

	"github.com/roach88/foodorders/internal/ledger"
)

// InsertOrder appends one order row and returns its assigned order_id.
// The insert runs in its own transaction, so a failure leaves no row.
func (s *Store) InsertOrder(ctx context.Context, o ledger.NewOrder) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("insert order: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	result, err := tx.ExecContext(ctx, `
		INSERT INTO orders (customer_name, items, total_bill)
		VALUES (?, ?, ?)
	`,
		o.CustomerName,
		o.ItemsSummary,
		o.TotalBill.String(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert order: last insert id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("insert order: commit: %w", err)
	}

	return id, nil
}
