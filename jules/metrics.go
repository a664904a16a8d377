package jules

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/atomic"
)

// metrics holds the client-scoped request and error counters. They exist
// for observability only; nothing in the request path reads them. The
// atomic mirrors back Stats without scraping Prometheus.
type metrics struct {
	requests *prometheus.CounterVec
	errors   *prometheus.CounterVec

	requestCount atomic.Int64
	errorCount   atomic.Int64
}

// newMetrics builds the counters. With a nil registerer the counters are
// created unregistered, so multiple clients in one process never collide.
func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "jules_client_requests_total",
			Help: "Request attempts issued by the Jules client, including retries.",
		}, []string{"method"}),
		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "jules_client_errors_total",
			Help: "Failed request attempts by error kind.",
		}, []string{"kind"}),
	}
}

func (m *metrics) recordRequest(method string) {
	m.requestCount.Inc()
	m.requests.WithLabelValues(method).Inc()
}

func (m *metrics) recordError(kind Kind) {
	m.errorCount.Inc()
	m.errors.WithLabelValues(kind.String()).Inc()
}
