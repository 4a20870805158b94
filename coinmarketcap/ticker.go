package coinmarketcap

import (
	"encoding/json"
	"fmt"
	"go-exchange-rate-client"
	"strings"
)

// tickerResponse body of the ticker endpoint. Pointers tell missing fields from zero values.
type tickerResponse struct {
	Data     *tickerData     `json:"data"`
	Metadata *tickerMetadata `json:"metadata"`
}

type tickerData struct {
	ID                int64                  `json:"id"`
	Name              string                 `json:"name"`
	Symbol            string                 `json:"symbol"`
	WebsiteSlug       string                 `json:"website_slug"`
	Rank              int64                  `json:"rank"`
	CirculatingSupply float64                `json:"circulating_supply"`
	TotalSupply       float64                `json:"total_supply"`
	MaxSupply         *float64               `json:"max_supply"`
	Quotes            map[string]tickerQuote `json:"quotes"`
	LastUpdated       int64                  `json:"last_updated"`
}

type tickerQuote struct {
	Price            *float64 `json:"price"`
	Volume24h        float64  `json:"volume_24h"`
	MarketCap        float64  `json:"market_cap"`
	PercentChange1h  float64  `json:"percent_change_1h"`
	PercentChange24h float64  `json:"percent_change_24h"`
	PercentChange7d  float64  `json:"percent_change_7d"`
}

type tickerMetadata struct {
	Timestamp int64   `json:"timestamp"`
	Error     *string `json:"error"`
}

// parseTicker interprets a successful response body
func parseTicker(body []byte, base rate.Currency, quote rate.Currency) (rate.ExchangeRate, error) {
	var response tickerResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return rate.ExchangeRate{}, fmt.Errorf("%w: decoding json: %v", rate.ErrMalformedResponse, err)
	}

	if response.Metadata == nil {
		return rate.ExchangeRate{}, fmt.Errorf("%w: no metadata", rate.ErrMalformedResponse)
	}
	if response.Metadata.Error != nil {
		return rate.ExchangeRate{}, &rate.ServiceError{Message: *response.Metadata.Error}
	}

	if response.Data == nil {
		return rate.ExchangeRate{}, fmt.Errorf("%w: no data", rate.ErrMalformedResponse)
	}
	entry, ok := response.Data.quoteFor(quote)
	if !ok {
		return rate.ExchangeRate{}, fmt.Errorf("%w: no quote for %v", rate.ErrMalformedResponse, quote)
	}
	if entry.Price == nil {
		return rate.ExchangeRate{}, fmt.Errorf("%w: no price for %v", rate.ErrMalformedResponse, quote)
	}

	exchangeRate, err := rate.NewExchangeRate(base, quote, *entry.Price)
	if err != nil {
		return rate.ExchangeRate{}, fmt.Errorf("%w: %v", rate.ErrMalformedResponse, err)
	}
	return exchangeRate, nil
}

// quoteFor finds the entry for quote: the exact key first, then the upper-cased key, then the
// default currency entry when quote is the default currency.
func (d *tickerData) quoteFor(quote rate.Currency) (tickerQuote, bool) {
	if entry, ok := d.Quotes[string(quote)]; ok {
		return entry, true
	}
	if upper := quote.Normalize(); upper != quote {
		if entry, ok := d.Quotes[string(upper)]; ok {
			return entry, true
		}
	}
	if strings.EqualFold(string(quote), string(DefaultCurrency)) {
		entry, ok := d.Quotes[string(DefaultCurrency)]
		return entry, ok
	}
	return tickerQuote{}, false
}
