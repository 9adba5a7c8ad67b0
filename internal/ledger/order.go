package ledger

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

// ErrOrderNotFound is returned by Store.ReadOrder for an unknown ID.
var ErrOrderNotFound = errors.New("order not found")

// Order is a committed ledger record. It is never modified after insert.
type Order struct {
	ID           int64           `json:"order_id"`
	CustomerName string          `json:"customer_name"`
	ItemsSummary string          `json:"items"`
	TotalBill    decimal.Decimal `json:"total_bill"`
}

// NewOrder is the row a Store appends; the Store assigns the ID.
type NewOrder struct {
	CustomerName string
	ItemsSummary string
	TotalBill    decimal.Decimal
}

// Store is the durable, append-only order relation.
//
// Implementations must assign strictly increasing IDs, make InsertOrder
// atomic, and return reads in ID order.
type Store interface {
	InsertOrder(ctx context.Context, o NewOrder) (int64, error)
	ReadOrder(ctx context.Context, id int64) (Order, error)
	ReadAllOrders(ctx context.Context) ([]Order, error)
	ReadTotals(ctx context.Context) ([]decimal.Decimal, error)
	ReadDistinctCustomers(ctx context.Context) ([]string, error)
}

// NormalizeCustomerName trims surrounding whitespace and applies NFC so
// that visually identical names count as one customer.
func NormalizeCustomerName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}
