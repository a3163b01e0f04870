package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Kind is the closed set of failure classes crossing the gateway
// boundary. Nothing from the upstream client or the prompt layer is
// allowed to escape unclassified.
type Kind string

const (
	KindNotConfigured Kind = "not_configured"
	KindInvalidInput  Kind = "invalid_input"
	KindUpstream      Kind = "upstream_error"
	KindEmptyResponse Kind = "empty_response"
)

// Error is the only error shape the gateway returns. The message may
// embed the resolved model id for diagnosability, never credentials.
type Error struct {
	Kind     Kind
	Model    string
	Message  string
	TimedOut bool
}

func (e *Error) Error() string {
	return e.Message
}

// AsError unwraps err into a gateway *Error if it is one.
func AsError(err error) (*Error, bool) {
	var ge *Error
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

func errNotConfigured() *Error {
	return &Error{
		Kind:    KindNotConfigured,
		Message: "Server Error: provider API key not configured",
	}
}

func errInvalidInput(msg string) *Error {
	return &Error{
		Kind:    KindInvalidInput,
		Message: msg,
	}
}

func errUpstream(model string, cause error) *Error {
	return &Error{
		Kind:     KindUpstream,
		Model:    model,
		Message:  fmt.Sprintf("API Error (%s): %v", model, cause),
		TimedOut: isTimeout(cause),
	}
}

func errEmptyResponse(model string) *Error {
	return &Error{
		Kind:    KindEmptyResponse,
		Model:   model,
		Message: "Empty response",
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
