package exchange

import (
	"context"
	"errors"
	"fmt"
	"go-exchange-rate-client"
	"go-exchange-rate-client/coinmarketcap"
)

var (
	// ErrNoAsset neither side of a conversion is the asset the price service quotes
	ErrNoAsset = errors.New("conversion does not involve the priced asset")

	// ErrMissingCurrency a conversion names no from or no to currency
	ErrMissingCurrency = errors.New("missing currency")
)

// Service interface for converting between the asset and other currencies
type Service interface {
	Convert(ctx context.Context, amount rate.Amount, from rate.Currency, to rate.Currency) (rate.Exchanged, error)
}

// service converts amounts with rates looked up from coinmarketcap
type service struct {
	// asset the currency priced by rateService
	asset rate.Currency

	// rateService to look up exchange rates of asset
	rateService coinmarketcap.Service
}

// NewService constructs a valid Service converting to and from asset
func NewService(asset rate.Currency, s coinmarketcap.Service) Service {
	return &service{
		asset:       asset.Normalize(),
		rateService: s,
	}
}

// Convert computes a conversion from one currency to another with the current exchange rate.
// Either from or to must be the asset. Each conversion between different currencies looks the
// rate up once.
func (s *service) Convert(ctx context.Context, amount rate.Amount, from rate.Currency, to rate.Currency) (rate.Exchanged, error) {
	from, to = from.Normalize(), to.Normalize()
	if from == "" || to == "" {
		return rate.Exchanged{}, fmt.Errorf("convert [%v -> %v]: %w", from, to, ErrMissingCurrency)
	}

	var exchangeRate rate.ExchangeRate
	var err error
	switch {
	case from == to:
		exchangeRate, err = rate.NewExchangeRate(from, to, 1)
	case from == s.asset:
		exchangeRate, err = s.rateService.ExchangeRate(ctx, from, to)
	case to == s.asset:
		var assetRate rate.ExchangeRate
		assetRate, err = s.rateService.ExchangeRate(ctx, to, from)
		if err == nil {
			exchangeRate = assetRate.Inverse()
		}
	default:
		return rate.Exchanged{}, fmt.Errorf("convert [%v -> %v]: %w", from, to, ErrNoAsset)
	}
	if err != nil {
		return rate.Exchanged{}, fmt.Errorf("convert [%v -> %v]: %w", from, to, err)
	}

	result := rate.Exchanged{
		Rate:   exchangeRate,
		Amount: rate.Amount(exchangeRate.Rate() * float64(amount)),
	}

	return result, nil
}
