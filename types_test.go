package rate

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"net/http"
	"testing"
)

func TestNewExchangeRate(t *testing.T) {
	got, err := NewExchangeRate(" xmr", "eur ", 1.56)

	require.NoError(t, err)
	assert.Equal(t, Currency("XMR"), got.BaseCurrency())
	assert.Equal(t, Currency("EUR"), got.QuoteCurrency())
	assert.Equal(t, 1.56, got.Rate())
	assert.Equal(t, "1 XMR = 1.56 EUR", got.String())
}

func TestNewExchangeRate_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		base  Currency
		quote Currency
		rate  float64
	}{
		{"empty base", "", "EUR", 1},
		{"blank quote", "XMR", "  ", 1},
		{"zero rate", "XMR", "EUR", 0},
		{"negative rate", "XMR", "EUR", -1.56},
		{"nan", "XMR", "EUR", math.NaN()},
		{"inf", "XMR", "EUR", math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewExchangeRate(tt.base, tt.quote, tt.rate)
			assert.ErrorIs(t, err, ErrInvalidRate)
		})
	}
}

func TestExchangeRate_Inverse(t *testing.T) {
	r, err := NewExchangeRate("XMR", "EUR", 4)
	require.NoError(t, err)

	inverse := r.Inverse()

	assert.Equal(t, Currency("EUR"), inverse.BaseCurrency())
	assert.Equal(t, Currency("XMR"), inverse.QuoteCurrency())
	assert.Equal(t, 0.25, inverse.Rate())
	assert.Equal(t, r, inverse.Inverse())
}

func TestExchangeErrors(t *testing.T) {
	var err error = &StatusError{StatusCode: http.StatusInternalServerError}
	ee, ok := AsExchangeError(err)
	require.True(t, ok)
	assert.Equal(t, 500, ee.Code())
	_, hasMsg := ee.ErrorMsg()
	assert.False(t, hasMsg)

	err = &ServiceError{Message: "id not found"}
	ee, ok = AsExchangeError(err)
	require.True(t, ok)
	assert.Equal(t, 200, ee.Code())
	msg, hasMsg := ee.ErrorMsg()
	assert.True(t, hasMsg)
	assert.Equal(t, "id not found", msg)

	_, ok = AsExchangeError(errors.New("connection refused"))
	assert.False(t, ok)
}
