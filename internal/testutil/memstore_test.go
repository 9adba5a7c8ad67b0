package testutil

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/foodorders/internal/ledger"
)

func newOrder(customer, items string, total int64) ledger.NewOrder {
	return ledger.NewOrder{CustomerName: customer, ItemsSummary: items, TotalBill: decimal.NewFromInt(total)}
}

func TestMemStore_InsertAndRead(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	id1, err := s.InsertOrder(ctx, newOrder("Bob", "Sushi", 12))
	require.NoError(t, err)
	id2, err := s.InsertOrder(ctx, newOrder("Alice", "Pizza, Burger", 15))
	require.NoError(t, err)
	_, err = s.InsertOrder(ctx, newOrder("Bob", "Tacos", 7))
	require.NoError(t, err)

	assert.Equal(t, int64(1), id1)
	assert.Equal(t, int64(2), id2)
	assert.Equal(t, 3, s.Len())

	o, err := s.ReadOrder(ctx, id2)
	require.NoError(t, err)
	assert.Equal(t, "Alice", o.CustomerName)
	assert.Equal(t, "Pizza, Burger", o.ItemsSummary)

	_, err = s.ReadOrder(ctx, 99)
	assert.ErrorIs(t, err, ledger.ErrOrderNotFound)

	all, err := s.ReadAllOrders(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(3), all[2].ID)

	totals, err := s.ReadTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"12", "15", "7"}, []string{totals[0].String(), totals[1].String(), totals[2].String()})

	names, err := s.ReadDistinctCustomers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, names)
}

func TestMemStore_Err(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk full")
	s := &MemStore{Err: boom}

	_, err := s.InsertOrder(ctx, newOrder("Alice", "Pizza", 10))
	assert.ErrorIs(t, err, boom)
	_, err = s.ReadAllOrders(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = s.ReadTotals(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = s.ReadDistinctCustomers(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = s.ReadOrder(ctx, 1)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, s.Len())
}

func TestMemStore_ConcurrentInserts(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.InsertOrder(ctx, newOrder("Alice", "Pizza", 10))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := s.ReadAllOrders(ctx)
	require.NoError(t, err)
	require.Len(t, all, 50)
	for i, o := range all {
		assert.Equal(t, int64(i+1), o.ID)
	}
}
