package coinmarketcap

import (
	"context"
	"fmt"
	"go-exchange-rate-client"
)

// Callback receives the outcome of Query. Exactly one of the methods is called, exactly once.
type Callback interface {
	OnSuccess(exchangeRate rate.ExchangeRate)
	OnError(err error)
}

// CallbackFuncs adapts a pair of functions to a Callback. Nil functions are skipped.
type CallbackFuncs struct {
	Success func(exchangeRate rate.ExchangeRate)
	Error   func(err error)
}

func (c CallbackFuncs) OnSuccess(exchangeRate rate.ExchangeRate) {
	if c.Success != nil {
		c.Success(exchangeRate)
	}
}

func (c CallbackFuncs) OnError(err error) {
	if c.Error != nil {
		c.Error(err)
	}
}

// Result outcome of one lookup, either Rate or Err is set
type Result struct {
	Rate rate.ExchangeRate
	Err  error
}

// Query looks up the rate of base in quote without blocking the caller.
// callback is invoked from another go-routine once the request completes.
func Query(ctx context.Context, s Service, base rate.Currency, quote rate.Currency, callback Callback) {
	go func() {
		result := lookup(ctx, s, base, quote)
		if result.Err != nil {
			callback.OnError(result.Err)
			return
		}
		callback.OnSuccess(result.Rate)
	}()
}

// QueryAsync looks up the rate of base in quote without blocking the caller.
// The returned channel receives exactly one Result and is then closed.
func QueryAsync(ctx context.Context, s Service, base rate.Currency, quote rate.Currency) <-chan Result {
	results := make(chan Result, 1)
	go func() {
		defer close(results)
		results <- lookup(ctx, s, base, quote)
	}()
	return results
}

// lookup runs one lookup, turning a panic of the service into an error
func lookup(ctx context.Context, s Service, base rate.Currency, quote rate.Currency) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{Err: fmt.Errorf("exchange rate [%v/%v]: panic: %v", base, quote, r)}
		}
	}()
	exchangeRate, err := s.ExchangeRate(ctx, base, quote)
	if err != nil {
		return Result{Err: err}
	}
	return Result{Rate: exchangeRate}
}
