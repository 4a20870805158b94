package exchange

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-exchange-rate-client"
	"testing"
)

type mock struct {
	// prices of one XMR by currency
	prices map[rate.Currency]float64
	calls  int
}

func (m *mock) ExchangeRate(_ context.Context, base rate.Currency, quote rate.Currency) (rate.ExchangeRate, error) {
	m.calls++
	price, ok := m.prices[quote]
	if !ok || base != "XMR" {
		return rate.ExchangeRate{}, &rate.ServiceError{Message: "id not found"}
	}
	return rate.NewExchangeRate(base, quote, price)
}

func TestService_Convert(t *testing.T) {
	type args struct {
		amount rate.Amount
		from   rate.Currency
		to     rate.Currency
	}
	tests := []struct {
		name      string
		args      args
		wantRate  float64
		want      rate.Amount
		wantCalls int
		wantErr   error
	}{
		{"xmr -> eur", args{10.0, "XMR", "EUR"}, 2.0, 20.0, 1, nil},
		{"xmr -> usd", args{10.0, "XMR", "USD"}, 4.0, 40.0, 1, nil},
		{"lower case", args{10.0, "xmr", "eur"}, 2.0, 20.0, 1, nil},
		{"eur -> xmr", args{10.0, "EUR", "XMR"}, 0.5, 5.0, 1, nil},
		{"xmr -> xmr", args{10.0, "XMR", "XMR"}, 1.0, 10.0, 0, nil},
		{"eur -> usd", args{10.0, "EUR", "USD"}, 0, 0, 0, ErrNoAsset},
		{"no currencies", args{10.0, "", ""}, 0, 0, 0, ErrMissingCurrency},
		{"blank to", args{10.0, "XMR", "  "}, 0, 0, 0, ErrMissingCurrency},
		{"no from", args{10.0, "", "XMR"}, 0, 0, 0, ErrMissingCurrency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rates := &mock{prices: map[rate.Currency]float64{"EUR": 2.0, "USD": 4.0}}
			service := NewService("XMR", rates)

			got, err := service.Convert(context.Background(), tt.args.amount, tt.args.from, tt.args.to)

			assert.Equal(t, tt.wantCalls, rates.calls)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.args.from.Normalize(), got.Rate.BaseCurrency())
			assert.Equal(t, tt.args.to.Normalize(), got.Rate.QuoteCurrency())
			assert.Equal(t, tt.wantRate, got.Rate.Rate())
			assert.Equal(t, tt.want, got.Amount)
		})
	}
}

func TestService_ConvertUnknownCurrency(t *testing.T) {
	service := NewService("XMR", &mock{prices: map[rate.Currency]float64{}})

	_, err := service.Convert(context.Background(), 1, "XMR", "ABC")

	var serviceErr *rate.ServiceError
	require.True(t, errors.As(err, &serviceErr))
	assert.Equal(t, "id not found", serviceErr.Message)
}

func TestService_ConvertToAssetUnknownCurrency(t *testing.T) {
	rates := &mock{prices: map[rate.Currency]float64{}}
	service := NewService("XMR", rates)

	got, err := service.Convert(context.Background(), 1, "ABC", "XMR")

	var serviceErr *rate.ServiceError
	require.True(t, errors.As(err, &serviceErr))
	assert.Equal(t, 1, rates.calls)
	assert.Equal(t, rate.Exchanged{}, got)
}
