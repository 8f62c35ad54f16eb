package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/guttosm/courier-portal/internal/circuitbreaker"
)

const maxErrorBody = 512

// Error is a non-2xx response from the backend.
type Error struct {
	Endpoint string
	Status   int
	// Message is the backend's own explanation, safe to show to users for 4xx.
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend %s: HTTP %d: %s", e.Endpoint, e.Status, e.Message)
}

// IsClientError reports whether the backend rejected the request itself.
func (e *Error) IsClientError() bool {
	return e.Status >= 400 && e.Status < 500
}

// newError reads the message out of a backend error body. JSON bodies with a
// message, error or detail field are preferred; otherwise the raw body is used.
func newError(endpoint string, status int, body []byte) *Error {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Detail  string `json:"detail"`
	}

	msg := ""
	if json.Unmarshal(body, &payload) == nil {
		switch {
		case payload.Message != "":
			msg = payload.Message
		case payload.Error != "":
			msg = payload.Error
		case payload.Detail != "":
			msg = payload.Detail
		}
	}
	if msg == "" {
		msg = strings.TrimSpace(string(body))
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody]
		}
	}
	if msg == "" {
		msg = http.StatusText(status)
	}

	return &Error{Endpoint: endpoint, Status: status, Message: msg}
}

// IsFailure decides which errors trip the circuit breaker: transport errors and
// 5xx responses. Rejections (4xx) and caller cancellations do not.
func IsFailure(err error) bool {
	var be *Error
	if errors.As(err, &be) {
		return !be.IsClientError()
	}
	return !errors.Is(err, context.Canceled)
}

// StatusCode maps a backend call error to the status the portal should return.
// 4xx responses pass through; an open circuit is 503; timeouts are 504;
// everything else is 502.
func StatusCode(err error) int {
	var be *Error
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &be) && be.IsClientError():
		return be.Status
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return http.StatusServiceUnavailable
	case isTimeout(err):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

// ClientMessage returns the backend's message for 4xx errors, or "".
func ClientMessage(err error) string {
	var be *Error
	if errors.As(err, &be) && be.IsClientError() {
		return be.Message
	}
	return ""
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func outcome(err error) string {
	var be *Error
	switch {
	case err == nil:
		return "success"
	case errors.As(err, &be) && be.IsClientError():
		return "client_error"
	case errors.As(err, &be):
		return "server_error"
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return "circuit_open"
	case isTimeout(err):
		return "timeout"
	default:
		return "transport_error"
	}
}
