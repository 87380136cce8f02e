package connector

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// Connector Errors
// ---------------------------------------------------------------------------

var (
	// Connection errors
	ErrNotConnected       = errors.New("connector: not connected to ERP gateway")
	ErrGatewayUnreachable = errors.New("connector: ERP gateway unreachable")

	// Request errors
	ErrRequestFailed   = errors.New("connector: gateway request failed")
	ErrInvalidResponse = errors.New("connector: invalid gateway response")

	// Dispatch errors
	ErrUnknownDataType = errors.New("connector: unknown data type")
)

// maxErrorBody caps how much of a gateway response body is retained on errors.
const maxErrorBody = 200

// RequestError describes a single failed exchange with the ERP gateway.
// It carries the HTTP status (0 for transport failures) and a truncated
// copy of the response body for diagnostics.
type RequestError struct {
	// StatusCode is the HTTP status code, or 0 if the request never completed
	StatusCode int
	// Body is the truncated response body
	Body string
	// Err is the underlying cause, if any
	Err error
}

// NewRequestError creates a RequestError for a non-2xx gateway response,
// truncating the body.
func NewRequestError(statusCode int, body string) *RequestError {
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return &RequestError{StatusCode: statusCode, Body: body}
}

// WrapRequestError creates a RequestError around a transport or parse failure.
func WrapRequestError(err error) *RequestError {
	return &RequestError{Err: err}
}

// Error implements the error interface
func (e *RequestError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("connector: gateway request failed: HTTP %d: %s", e.StatusCode, e.Body)
	}
	if e.Err != nil {
		return fmt.Sprintf("connector: gateway request failed: %v", e.Err)
	}
	return "connector: gateway request failed"
}

// Unwrap returns the underlying cause
func (e *RequestError) Unwrap() error {
	return e.Err
}

// Is reports ErrRequestFailed so callers can match with errors.Is
func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed
}
