// Package testutil provides test doubles shared across packages.
package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/roach88/foodorders/internal/ledger"
)

// MemStore is an in-memory ledger.Store.
//
// IDs start at 1 and increase by one per insert, like the SQL stores.
// When Err is set every operation fails with it and nothing is written.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type MemStore struct {
	mu     sync.Mutex
	seq    int64
	orders []ledger.Order

	Err error
}

// NewMemStore creates an empty store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// InsertOrder appends o and returns its ID.
func (s *MemStore) InsertOrder(_ context.Context, o ledger.NewOrder) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	s.seq++
	s.orders = append(s.orders, ledger.Order{
		ID:           s.seq,
		CustomerName: o.CustomerName,
		ItemsSummary: o.ItemsSummary,
		TotalBill:    o.TotalBill,
	})
	return s.seq, nil
}

// ReadOrder returns the order with id, or ledger.ErrOrderNotFound.
func (s *MemStore) ReadOrder(_ context.Context, id int64) (ledger.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return ledger.Order{}, s.Err
	}
	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return ledger.Order{}, ledger.ErrOrderNotFound
}

// ReadAllOrders returns every order in ID order.
func (s *MemStore) ReadAllOrders(context.Context) ([]ledger.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]ledger.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

// ReadTotals returns each order's bill in ID order.
func (s *MemStore) ReadTotals(context.Context) ([]decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]decimal.Decimal, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o.TotalBill)
	}
	return out, nil
}

// ReadDistinctCustomers returns each customer name once, in byte order.
func (s *MemStore) ReadDistinctCustomers(context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	seen := make(map[string]struct{}, len(s.orders))
	out := make([]string, 0, len(s.orders))
	for _, o := range s.orders {
		if _, ok := seen[o.CustomerName]; ok {
			continue
		}
		seen[o.CustomerName] = struct{}{}
		out = append(out, o.CustomerName)
	}
	sort.Strings(out)
	return out, nil
}

// Len returns the number of stored orders.
func (s *MemStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

var _ ledger.Store = (*MemStore)(nil)
