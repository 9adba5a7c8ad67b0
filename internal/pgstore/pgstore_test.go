package pgstore

import (
	"context"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/foodorders/internal/ledger"
)

// openTestStore connects to FOODORDERS_TEST_PG_URL and empties the orders
// table. Tests are skipped when the variable is unset.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	url := os.Getenv("FOODORDERS_TEST_PG_URL")
	if url == "" {
		t.Skip("FOODORDERS_TEST_PG_URL not set")
	}

	ctx := context.Background()
	s, err := Open(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	_, err = s.pool.Exec(ctx, `TRUNCATE orders RESTART IDENTITY`)
	require.NoError(t, err)
	return s
}

func TestInsertAndRead(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id1, err := s.InsertOrder(ctx, ledger.NewOrder{CustomerName: "Alice", ItemsSummary: "Pizza, Burger", TotalBill: decimal.NewFromInt(15)})
	require.NoError(t, err)
	id2, err := s.InsertOrder(ctx, ledger.NewOrder{CustomerName: "Bob", ItemsSummary: "Latte", TotalBill: decimal.RequireFromString("3.75")})
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	orders, err := s.ReadAllOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "Pizza, Burger", orders[0].ItemsSummary)
	assert.True(t, decimal.RequireFromString("3.75").Equal(orders[1].TotalBill))

	o, err := s.ReadOrder(ctx, id1)
	require.NoError(t, err)
	assert.Equal(t, "Alice", o.CustomerName)

	_, err = s.ReadOrder(ctx, id2+1000)
	assert.ErrorIs(t, err, ledger.ErrOrderNotFound)
}

func TestAggregates(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"Bob", "Alice", "Bob"} {
		_, err := s.InsertOrder(ctx, ledger.NewOrder{CustomerName: name, ItemsSummary: "Pizza", TotalBill: decimal.RequireFromString("10.10")})
		require.NoError(t, err)
	}

	totals, err := s.ReadTotals(ctx)
	require.NoError(t, err)
	sum := decimal.Zero
	for _, d := range totals {
		sum = sum.Add(d)
	}
	assert.Equal(t, "30.3", sum.String())

	names, err := s.ReadDistinctCustomers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, names)
}

func TestReadAll_Empty(t *testing.T) {
	s := openTestStore(t)

	orders, err := s.ReadAllOrders(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}
