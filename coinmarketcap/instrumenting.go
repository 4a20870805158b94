package coinmarketcap

import (
	"context"
	"errors"
	"go-exchange-rate-client"
	"go-exchange-rate-client/metrics"
	"time"
)

// instrumentingService decorates a coinmarketcap.Service with prometheus metrics
type instrumentingService struct {
	next    Service
	metrics *metrics.Metrics
}

// NewInstrumentingService returns a new instrumenting Service
func NewInstrumentingService(m *metrics.Metrics, s Service) Service {
	return &instrumentingService{
		next:    s,
		metrics: m,
	}
}

func (s *instrumentingService) ExchangeRate(ctx context.Context, base rate.Currency, quote rate.Currency) (exchangeRate rate.ExchangeRate, err error) {
	defer func(begin time.Time) {
		s.metrics.QueryDuration.Observe(time.Since(begin).Seconds())
		s.metrics.QueriesTotal.WithLabelValues(outcome(err)).Inc()
	}(time.Now())
	return s.next.ExchangeRate(ctx, base, quote)
}

// outcome classifies err for the outcome label
func outcome(err error) string {
	var statusErr *rate.StatusError
	var serviceErr *rate.ServiceError
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.As(err, &statusErr):
		return metrics.OutcomeStatusError
	case errors.As(err, &serviceErr):
		return metrics.OutcomeServiceError
	case errors.Is(err, rate.ErrMalformedResponse):
		return metrics.OutcomeMalformed
	default:
		return metrics.OutcomeTransportError
	}
}
