package rate

import (
	"fmt"
	"math"
	"strings"
)

// Currency a currency code or asset symbol, e.g. "XMR" or "EUR"
type Currency string

// Normalize returns the canonical, upper-cased form of c
func (c Currency) Normalize() Currency {
	return Currency(strings.ToUpper(strings.TrimSpace(string(c))))
}

// Amount a monetary amount
type Amount float64

// ExchangeRate price of one unit of a base currency expressed in a quote currency.
// The zero value is not a valid rate, use NewExchangeRate.
type ExchangeRate struct {
	base  Currency
	quote Currency
	rate  float64
}

// NewExchangeRate constructs a valid ExchangeRate. Both symbols are normalized.
func NewExchangeRate(base, quote Currency, rate float64) (ExchangeRate, error) {
	base, quote = base.Normalize(), quote.Normalize()
	if base == "" {
		return ExchangeRate{}, fmt.Errorf("%w: empty base currency", ErrInvalidRate)
	}
	if quote == "" {
		return ExchangeRate{}, fmt.Errorf("%w: empty quote currency", ErrInvalidRate)
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return ExchangeRate{}, fmt.Errorf("%w: rate %v for %v/%v", ErrInvalidRate, rate, base, quote)
	}
	return ExchangeRate{base: base, quote: quote, rate: rate}, nil
}

func (r ExchangeRate) BaseCurrency() Currency {
	return r.base
}

func (r ExchangeRate) QuoteCurrency() Currency {
	return r.quote
}

func (r ExchangeRate) Rate() float64 {
	return r.rate
}

// Inverse the rate of the quote currency expressed in the base currency
func (r ExchangeRate) Inverse() ExchangeRate {
	return ExchangeRate{base: r.quote, quote: r.base, rate: 1 / r.rate}
}

func (r ExchangeRate) String() string {
	return fmt.Sprintf("1 %v = %v %v", r.base, r.rate, r.quote)
}

// Exchanged result of converting an amount with an exchange rate
type Exchanged struct {
	Rate   ExchangeRate
	Amount Amount
}
