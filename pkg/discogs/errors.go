package discogs

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// APIError represents an error reported by the Discogs API, or a response
// that could not be understood.
//
// Code holds the HTTP status code when the error came from a non-200
// response, and 0 otherwise.
type APIError struct {
	Code    int    // HTTP status code, or 0
	Message string // Error message from Discogs, or a description of the problem
	Err     error  // Optional sentinel (ErrInvalidXML, ErrUnexpectedDocument)
}

// Error returns the error message.
func (e *APIError) Error() string {
	if e.Code == 0 {
		return fmt.Sprintf("discogs: %s", e.Message)
	}
	return fmt.Sprintf("discogs: error %d: %s", e.Code, e.Message)
}

// Is reports whether target is an *APIError with the same code and message.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// Unwrap returns the wrapped sentinel, if any.
func (e *APIError) Unwrap() error {
	return e.Err
}

// NotFound reports whether the API answered 404.
func (e *APIError) NotFound() bool {
	return e.Code == 404
}

// TransportCode classifies a TransportError.
type TransportCode int

// Transport error codes.
const (
	CodeUnknown TransportCode = iota
	CodeTimeout
	CodeCanceled
	CodeDNS
	CodeConnect
)

// String returns a short name for the code.
func (c TransportCode) String() string {
	switch c {
	case CodeTimeout:
		return "timeout"
	case CodeCanceled:
		return "canceled"
	case CodeDNS:
		return "dns"
	case CodeConnect:
		return "connect"
	default:
		return "unknown"
	}
}

// TransportError is returned when the request never produced an HTTP
// response: DNS failures, refused connections, timeouts and cancellation.
type TransportError struct {
	Message string
	Code    TransportCode
	Err     error
}

// Error returns the error message.
func (e *TransportError) Error() string {
	return fmt.Sprintf("discogs: transport error (%s): %s", e.Code, e.Message)
}

// Unwrap returns the underlying network error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the request ran out of time.
func (e *TransportError) Timeout() bool {
	return e.Code == CodeTimeout
}

// Predefined errors for common cases.
var (
	// ErrAPIKeyRequired is returned by NewClient when no API key is given.
	ErrAPIKeyRequired = errors.New("discogs: APIKey is required")

	// ErrInvalidXML is wrapped by an APIError when a response body is not
	// a well-formed XML document.
	ErrInvalidXML = errors.New("discogs: invalid XML")

	// ErrUnexpectedDocument is wrapped by an APIError when a well-formed
	// response lacks the element an endpoint expects.
	ErrUnexpectedDocument = errors.New("discogs: unexpected document")
)

// newTransportError classifies err and wraps it.
func newTransportError(err error) *TransportError {
	code := CodeUnknown

	var dnsErr *net.DNSError
	var opErr *net.OpError
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		code = CodeTimeout
	case errors.Is(err, context.Canceled):
		code = CodeCanceled
	case errors.Is(err, ErrThrottled):
		code = CodeTimeout
	case errors.As(err, &dnsErr):
		code = CodeDNS
	case errors.As(err, &netErr) && netErr.Timeout():
		code = CodeTimeout
	case errors.As(err, &opErr) && opErr.Op == "dial":
		code = CodeConnect
	}

	return &TransportError{
		Message: err.Error(),
		Code:    code,
		Err:     err,
	}
}
