package coinmarketcap

import (
	"context"
	"github.com/go-kit/log"
	"go-exchange-rate-client"
	"time"
)

// loggingService decorates a coinmarketcap.Service with logging
type loggingService struct {
	next   Service
	logger log.Logger
}

// NewLoggingService return a new logging service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) ExchangeRate(ctx context.Context, base rate.Currency, quote rate.Currency) (exchangeRate rate.ExchangeRate, err error) {
	defer func(begin time.Time) {
		_ = s.logger.Log(
			"method", "exchange_rate",
			"base", base,
			"quote", quote,
			"rate", exchangeRate.Rate(),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ExchangeRate(ctx, base, quote)
}
