package coinmarketcap

import (
	"context"
	"fmt"
	"go-exchange-rate-client"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL ticker endpoint of the asset being priced (328 is Monero)
const DefaultBaseURL = "https://api.coinmarketcap.com/v2/ticker/328/"

// DefaultCurrency the currency the service always quotes, whatever was requested
const DefaultCurrency rate.Currency = "USD"

// Service wraps the coinmarketcap ticker REST API
type Service interface {
	// ExchangeRate looks up the current price of one unit of base in quote.
	// Every call issues exactly one request.
	ExchangeRate(ctx context.Context, base rate.Currency, quote rate.Currency) (rate.ExchangeRate, error)
}

// Doer executes HTTP requests. *http.Client is a Doer.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// service coinmarketcap API
type service struct {
	// url base API url, the convert parameter is appended to it
	url string

	// client for HTTP requests
	client Doer
}

// NewService constructs a valid coinmarketcap Service sending requests through client.
func NewService(baseURL string, client Doer) Service {
	return &service{
		url:    baseURL,
		client: client,
	}
}

// NewHTTPClient the transport used when none is injected
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}

// ExchangeRate loads the current rate of base in quote.
// Transport failures are returned as they are; failing statuses as *rate.StatusError; errors
// reported by the service as *rate.ServiceError; unexpected bodies wrap rate.ErrMalformedResponse.
func (s *service) ExchangeRate(ctx context.Context, base rate.Currency, quote rate.Currency) (rate.ExchangeRate, error) {
	u, err := s.requestURL(quote)
	if err != nil {
		return rate.ExchangeRate{}, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return rate.ExchangeRate{}, fmt.Errorf("building http request: %w", err)
	}
	httpResponse, err := s.client.Do(request)
	if err != nil {
		return rate.ExchangeRate{}, err
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode > 299 {
		return rate.ExchangeRate{}, &rate.StatusError{StatusCode: httpResponse.StatusCode}
	}

	body, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return rate.ExchangeRate{}, err
	}

	return parseTicker(body, base, quote)
}

// requestURL adds the convert parameter to the base url, keeping the case of quote
func (s *service) requestURL(quote rate.Currency) (string, error) {
	u, err := url.Parse(s.url)
	if err != nil {
		return "", fmt.Errorf("parsing base url [%v]: %w", s.url, err)
	}
	query := u.Query()
	query.Set("convert", string(quote))
	u.RawQuery = query.Encode()
	return u.String(), nil
}
