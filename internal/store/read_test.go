package store

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/foodorders/internal/ledger"
)

func TestReadAllOrders_Empty(t *testing.T) {
	s := createTestStore(t)

	orders, err := s.ReadAllOrders(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestReadAllOrders_InsertionOrder(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	_, err := s.InsertOrder(ctx, newTestOrder("Zed", "Pizza, Burger", "15"))
	require.NoError(t, err)
	_, err = s.InsertOrder(ctx, newTestOrder("Alice", "Pasta", "8"))
	require.NoError(t, err)

	orders, err := s.ReadAllOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, int64(1), orders[0].ID)
	assert.Equal(t, "Zed", orders[0].CustomerName)
	assert.Equal(t, "Pizza, Burger", orders[0].ItemsSummary)
	assert.True(t, decimal.NewFromInt(15).Equal(orders[0].TotalBill))

	assert.Equal(t, int64(2), orders[1].ID)
	assert.Equal(t, "Alice", orders[1].CustomerName)
}

func TestReadOrder(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	id, err := s.InsertOrder(ctx, newTestOrder("Alice", "Latte, Latte", "7.50"))
	require.NoError(t, err)

	o, err := s.ReadOrder(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, o.ID)
	assert.Equal(t, "Latte, Latte", o.ItemsSummary)
	assert.Equal(t, "7.5", o.TotalBill.String())
}

func TestReadOrder_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.ReadOrder(context.Background(), 42)
	assert.ErrorIs(t, err, ledger.ErrOrderNotFound)
}

func TestReadTotals_ExactDecimals(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	for _, total := range []string{"0.1", "0.2", "10", "3.75"} {
		_, err := s.InsertOrder(ctx, newTestOrder("Alice", "x", total))
		require.NoError(t, err)
	}

	totals, err := s.ReadTotals(ctx)
	require.NoError(t, err)
	require.Len(t, totals, 4)

	sum := decimal.Zero
	for _, d := range totals {
		sum = sum.Add(d)
	}
	assert.Equal(t, "14.05", sum.String())
}

func TestReadTotals_Empty(t *testing.T) {
	s := createTestStore(t)

	totals, err := s.ReadTotals(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, totals)
	assert.Empty(t, totals)
}

func TestReadDistinctCustomers(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"bob", "Alice", "Bob", "Alice", "alice"} {
		_, err := s.InsertOrder(ctx, newTestOrder(name, "Pizza", "10"))
		require.NoError(t, err)
	}

	names, err := s.ReadDistinctCustomers(ctx)
	require.NoError(t, err)
	// Binary collation: uppercase sorts before lowercase, and case is significant.
	assert.Equal(t, []string{"Alice", "Bob", "alice", "bob"}, names)
}
