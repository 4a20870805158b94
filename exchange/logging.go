package exchange

import (
	"context"
	"errors"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-exchange-rate-client"
	"time"
)

// loggingService decorates an exchange.Service with levelled logging.
// Conversions the caller got wrong are warnings, failed lookups are errors.
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Convert(ctx context.Context, amount rate.Amount, from rate.Currency, to rate.Currency) (ex rate.Exchanged, err error) {
	defer func(begin time.Time) {
		keyvals := []interface{}{
			"method", "convert",
			"amount", amount,
			"from", from,
			"to", to,
			"took", time.Since(begin),
		}
		if err != nil {
			_ = levelFor(s.logger, err).Log(append(keyvals, "err", err)...)
			return
		}
		_ = level.Info(s.logger).Log(append(keyvals,
			"pair", ex.Rate.BaseCurrency()+"/"+ex.Rate.QuoteCurrency(),
			"rate", ex.Rate.Rate(),
			"converted_amount", ex.Amount,
		)...)
	}(time.Now())
	return s.next.Convert(ctx, amount, from, to)
}

func levelFor(logger log.Logger, err error) log.Logger {
	if errors.Is(err, ErrMissingCurrency) || errors.Is(err, ErrNoAsset) {
		return level.Warn(logger)
	}
	return level.Error(logger)
}
