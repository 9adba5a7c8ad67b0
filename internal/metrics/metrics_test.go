package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/foodorders/internal/ledger"
)

func TestRecorder_OrderCommitted(t *testing.T) {
	r := NewRecorder()

	r.OrderCommitted(ledger.Order{ID: 1, CustomerName: "Alice", ItemsSummary: "Pizza, Burger", TotalBill: decimal.NewFromInt(15)})
	r.OrderCommitted(ledger.Order{ID: 2, CustomerName: "Alice", ItemsSummary: "Pasta", TotalBill: decimal.NewFromInt(8)})

	assert.Equal(t, 2.0, testutil.ToFloat64(r.ordersCommitted))
	assert.Equal(t, 23.0, testutil.ToFloat64(r.revenue))
	assert.Equal(t, 1, testutil.CollectAndCount(r.itemsPerOrder))
}

func TestRecorder_CommitRejected(t *testing.T) {
	r := NewRecorder()

	r.CommitRejected("customer_name")
	r.CommitRejected("customer_name")
	r.CommitRejected("items")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.commitsRejected.WithLabelValues("customer_name")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.commitsRejected.WithLabelValues("items")))
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder()
	r.OrderCommitted(ledger.Order{ItemsSummary: "Pizza", TotalBill: decimal.NewFromInt(10)})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "foodorders_orders_committed_total 1")
}

func TestCountItems(t *testing.T) {
	assert.Equal(t, 0, countItems(""))
	assert.Equal(t, 1, countItems("Pizza"))
	assert.Equal(t, 3, countItems("Pizza, Burger, Ice Cream"))
}
