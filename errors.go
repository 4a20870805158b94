package rate

import (
	"errors"
	"fmt"
	"net/http"
)

// ServiceErrorCode is reported by ServiceError.Code. The transport succeeded, so the code is the
// HTTP status the service answered with.
const ServiceErrorCode = http.StatusOK

var (
	// ErrMalformedResponse a response body was received but does not have the expected shape.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrInvalidRate an exchange rate violates its invariants.
	ErrInvalidRate = errors.New("invalid exchange rate")
)

// ExchangeError an error reported by the price service, either through the HTTP status or
// inside a successful response body.
type ExchangeError interface {
	error

	// Code the HTTP status code, or ServiceErrorCode for errors reported in the body.
	Code() int

	// ErrorMsg the message reported by the service, if there was one.
	ErrorMsg() (string, bool)
}

// StatusError the service responded with a failing HTTP status
type StatusError struct {
	StatusCode int
}

var _ ExchangeError = (*StatusError)(nil)

func (e *StatusError) Error() string {
	return fmt.Sprintf("price service returned status %d", e.StatusCode)
}

func (e *StatusError) Code() int {
	return e.StatusCode
}

func (e *StatusError) ErrorMsg() (string, bool) {
	return "", false
}

// ServiceError the service responded successfully but reported an error in the body,
// e.g. an unknown asset or currency.
type ServiceError struct {
	Message string
}

var _ ExchangeError = (*ServiceError)(nil)

func (e *ServiceError) Error() string {
	return fmt.Sprintf("price service error: %s", e.Message)
}

func (e *ServiceError) Code() int {
	return ServiceErrorCode
}

func (e *ServiceError) ErrorMsg() (string, bool) {
	return e.Message, true
}

// AsExchangeError finds the first ExchangeError in err's chain
func AsExchangeError(err error) (ExchangeError, bool) {
	var ee ExchangeError
	if errors.As(err, &ee) {
		return ee, true
	}
	return nil, false
}
