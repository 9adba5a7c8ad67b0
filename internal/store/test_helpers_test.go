package store

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/roach88/foodorders/internal/ledger"
)

// createTestStore creates a new file-backed store in a temp dir for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// newTestOrder builds an insertable order; total is parsed as a decimal literal.
func newTestOrder(customer, items, total string) ledger.NewOrder {
	return ledger.NewOrder{
		CustomerName: customer,
		ItemsSummary: items,
		TotalBill:    decimal.RequireFromString(total),
	}
}
