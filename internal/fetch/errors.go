package fetch

import (
	"fmt"
)

// DefaultErrorMessage is shown when a failure carries no message of its own.
const DefaultErrorMessage = "Erro inesperado"

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrCancelled marks a settlement whose request was aborted. It is filtered
// out by Controller.Settle and never reaches a State.
const ErrCancelled = constError("request cancelled")

// HTTPStatusError reports a response with a non-2xx status code.
type HTTPStatusError struct {
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// TransportError reports a failure to complete the exchange: DNS, connection,
// TLS, timeouts or a broken body.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	if e.Err == nil || e.Err.Error() == "" {
		return DefaultErrorMessage
	}
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError reports a 2xx response whose body could not be decoded.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return "invalid response body"
	}
	return fmt.Sprintf("invalid response body: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Message returns the user-visible message for err.
func Message(err error) string {
	if err == nil || err.Error() == "" {
		return DefaultErrorMessage
	}
	return err.Error()
}
