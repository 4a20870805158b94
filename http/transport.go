package http

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/go-kit/log"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go-exchange-rate-client"
	"go-exchange-rate-client/exchange"
	"io"
	"net"
	"net/http"
)

// Server dependencies for HTTP Server functions
type Server struct {
	Service exchange.Service
	Logger  log.Logger
	router  *mux.Router
}

func NewServer(s exchange.Service, logger log.Logger) *Server {
	server := &Server{
		Service: s,
		Logger:  logger,
		router:  mux.NewRouter(),
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Handle("/api/rate/{base}/{quote}", s.exchangeRate()).Methods(http.MethodGet)
	s.router.Handle("/api/convert", s.convert()).Methods(http.MethodPost)
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// exchangeRate produces HTTP handler for exchange rate lookups
func (s *Server) exchangeRate() http.HandlerFunc {

	// response for marshalling JSON responses to return to clients
	type response struct {
		Base  rate.Currency `json:"base"`
		Quote rate.Currency `json:"quote"`
		Rate  float64       `json:"rate"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		result, err := s.Service.Convert(r.Context(), 1, rate.Currency(vars["base"]), rate.Currency(vars["quote"]))
		if err != nil {
			s.writeError(rw, err)
			return
		}

		s.writeJSON(rw, response{
			Base:  result.Rate.BaseCurrency(),
			Quote: result.Rate.QuoteCurrency(),
			Rate:  result.Rate.Rate(),
		})
	}
}

// convert produces HTTP handler for currency conversions
func (s *Server) convert() http.HandlerFunc {

	// request for unmarshalling JSON requests posted by clients
	type request struct {
		FromCurrency rate.Currency
		ToCurrency   rate.Currency
		Amount       rate.Amount
	}

	// response for marshalling JSON responses to return to clients
	type response struct {
		Exchange float64     `json:"exchange"`
		Amount   rate.Amount `json:"amount"`
		Original rate.Amount `json:"original"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		bytes, err := io.ReadAll(r.Body)
		if err != nil {
			writeMessage(rw, http.StatusBadRequest, "invalid request")
			return
		}

		var request request
		err = json.Unmarshal(bytes, &request)
		if err != nil {
			writeMessage(rw, http.StatusBadRequest, "invalid json")
			return
		}

		result, err := s.Service.Convert(r.Context(), request.Amount, request.FromCurrency, request.ToCurrency)
		if err != nil {
			s.writeError(rw, err)
			return
		}

		s.writeJSON(rw, response{
			Exchange: result.Rate.Rate(),
			Amount:   result.Amount,
			Original: request.Amount,
		})
	}
}

func (s *Server) writeJSON(rw http.ResponseWriter, v interface{}) {
	bytes, err := json.Marshal(v)
	if err != nil {
		_ = s.Logger.Log("msg", "failed json encoding", "err", err)
		writeMessage(rw, http.StatusInternalServerError, "failed json encoding")
		return
	}
	rw.Header().Set("Content-Type", "application/json")
	_, _ = rw.Write(append(bytes, '\n'))
}

// writeError maps a conversion failure onto a status code
func (s *Server) writeError(rw http.ResponseWriter, err error) {
	status, msg := statusFor(err)
	_ = s.Logger.Log("msg", "request failed", "status", status, "err", err)
	writeMessage(rw, status, msg)
}

func statusFor(err error) (int, string) {
	var serviceErr *rate.ServiceError
	var statusErr *rate.StatusError
	var netErr net.Error
	switch {
	case errors.Is(err, exchange.ErrMissingCurrency):
		return http.StatusBadRequest, "missing currency"
	case errors.Is(err, exchange.ErrNoAsset):
		return http.StatusBadRequest, "unsupported currency pair"
	case errors.As(err, &serviceErr):
		return http.StatusNotFound, serviceErr.Message
	case errors.As(err, &statusErr):
		return http.StatusBadGateway, "price service unavailable"
	case errors.Is(err, rate.ErrMalformedResponse):
		return http.StatusBadGateway, "unexpected price service response"
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return http.StatusGatewayTimeout, "price service timed out"
	default:
		return http.StatusBadGateway, "failed conversion"
	}
}

func writeMessage(rw http.ResponseWriter, status int, msg string) {
	bytes, _ := json.Marshal(map[string]string{"error": msg})
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	_, _ = rw.Write(append(bytes, '\n'))
}
