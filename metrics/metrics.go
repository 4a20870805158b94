package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Values of the outcome label
const (
	OutcomeSuccess        = "success"
	OutcomeStatusError    = "status_error"
	OutcomeServiceError   = "service_error"
	OutcomeMalformed      = "malformed"
	OutcomeTransportError = "transport_error"
)

type Metrics struct {
	QueriesTotal  *prometheus.CounterVec
	QueryDuration prometheus.Histogram
}

// New registers the exchange rate metrics with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		QueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_queries_total",
				Help: "Total number of exchange rate queries by outcome",
			},
			[]string{"outcome"},
		),

		QueryDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "rate_query_duration_seconds",
				Help:    "Exchange rate query duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}
