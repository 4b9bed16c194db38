package booking

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes surfaced to callers.
const (
	CodeUnknownService           = "unknownService"
	CodeUnknownBooking           = "unknownBooking"
	CodeSlotNoLongerAvailable    = "slotNoLongerAvailable"
	CodeInvalidTransition        = "invalidTransition"
	CodeEmergencyPolicyViolation = "emergencyPolicyViolation"
	CodeValidationFailed         = "validationFailed"
)

// EngineError is a coded booking-engine failure.
type EngineError struct {
	Code    string
	Message string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newEngineError(code, format string, args ...any) error {
	return &EngineError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ErrorCode extracts the engine error code, or "" for foreign errors.
func ErrorCode(err error) string {
	var ee *EngineError
	if errors.As(err, &ee) {
		return ee.Code
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return CodeValidationFailed
	}
	return ""
}

// FieldError scopes a validation failure to one client-supplied field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field errors. It is never a single opaque
// message: every entry names the field the caller must correct.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
