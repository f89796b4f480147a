package types

import "fmt"

// Code is a machine-readable error identifier.
type Code string

const (
	CONFIG_UNAVAILABLE Code = "CONFIG_UNAVAILABLE"
	INVALID_IDENTIFIER Code = "INVALID_IDENTIFIER"
)

var (
	ErrConfigUnavailable = &GatewayError{Code: CONFIG_UNAVAILABLE}
	ErrInvalidIdentifier = &GatewayError{Code: INVALID_IDENTIFIER}
)

// GatewayError is returned by lookups that concern a single gateway.
type GatewayError struct {
	Code    Code
	Message string
	Gateway GatewayID
	Cause   error
}

func NewConfigUnavailable(id GatewayID, message string, cause error) *GatewayError {
	return &GatewayError{Code: CONFIG_UNAVAILABLE, Message: message, Gateway: id, Cause: cause}
}

func NewInvalidIdentifier(id GatewayID) *GatewayError {
	return &GatewayError{Code: INVALID_IDENTIFIER, Message: "unknown gateway", Gateway: id}
}

func (e *GatewayError) Error() string {
	msg := string(e.Code)
	if e.Gateway != "" {
		msg += fmt.Sprintf(" (gateway: %s)", e.Gateway)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *GatewayError) Unwrap() error {
	return e.Cause
}

// Is matches any GatewayError carrying the same code.
func (e *GatewayError) Is(target error) bool {
	other, ok := target.(*GatewayError)
	if !ok {
		return false
	}
	return e.Code == other.Code
}
