// Package metrics exposes ledger activity as Prometheus metrics.
package metrics

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/roach88/foodorders/internal/ledger"
)

const namespace = "foodorders"

// Recorder implements ledger.Observer. It owns a private registry so
// several recorders (one per test) never collide.
type Recorder struct {
	registry *prometheus.Registry

	ordersCommitted prometheus.Counter
	revenue         prometheus.Counter
	itemsPerOrder   prometheus.Histogram
	commitsRejected *prometheus.CounterVec
}

// NewRecorder creates a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		ordersCommitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_committed_total",
			Help:      "Orders appended to the ledger.",
		}),
		revenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "revenue_committed_total",
			Help:      "Sum of committed order totals since process start.",
		}),
		itemsPerOrder: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "order_items",
			Help:      "Line items per committed order.",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21},
		}),
		commitsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commits_rejected_total",
			Help:      "Commits refused by validation, by offending field.",
		}, []string{"field"}),
	}
	r.registry.MustRegister(r.ordersCommitted, r.revenue, r.itemsPerOrder, r.commitsRejected)
	return r
}

// OrderCommitted records a successful commit.
func (r *Recorder) OrderCommitted(o ledger.Order) {
	r.ordersCommitted.Inc()
	// Prometheus counters are float64; the ledger stays exact.
	r.revenue.Add(o.TotalBill.InexactFloat64())
	r.itemsPerOrder.Observe(float64(countItems(o.ItemsSummary)))
}

// CommitRejected records a validation failure.
func (r *Recorder) CommitRejected(field string) {
	r.commitsRejected.WithLabelValues(field).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func countItems(summary string) int {
	if summary == "" {
		return 0
	}
	return strings.Count(summary, ", ") + 1
}

var _ ledger.Observer = (*Recorder)(nil)
