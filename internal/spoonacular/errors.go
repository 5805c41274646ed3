package spoonacular

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Fixed user-facing messages for transport failures.
const (
	msgTimedOut     = "Connection timed out. Please try again."
	msgOffline      = "No internet connection. Please check your network."
	msgDecodeFailed = "Failed to read the recipe service response."
)

// QuotaError is returned when the upstream responds with its error
// envelope, typically because the daily request quota is exhausted.
// The upstream message is carried verbatim.
type QuotaError struct {
	Status  string
	Code    int
	Message string
}

func (e *QuotaError) Error() string {
	return "API Error: " + e.Message
}

// DecodeError is returned when a response body matches neither the
// expected payload nor the upstream error envelope.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// TransportError is returned when the request never produced a
// response (timeout, DNS failure, refused connection).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// UserMessage translates any gateway error into the fixed user-facing
// string the UI shows in its error banner.
func UserMessage(err error) string {
	var quota *QuotaError
	if errors.As(err, &quota) {
		return quota.Error()
	}
	var decode *DecodeError
	if errors.As(err, &decode) {
		return msgDecodeFailed
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return msgTimedOut
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return msgTimedOut
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return msgOffline
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return msgOffline
	}
	return fmt.Sprintf("Network error: %v", err)
}
