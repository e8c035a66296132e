// internal/common/errors/handler.go
package errors

import (
	"time"
)

// ErrorHandler converts any pipeline error into the single local error string
// the presentation layer displays. Nothing escapes this boundary uncaught.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle normalizes err, logs it, and returns the user-facing message.
func (h *ErrorHandler) Handle(form string, err error) string {
	stdErr := h.normalizeError(err)

	h.logger.Error("submission failed", map[string]interface{}{
		"form":      form,
		"errorCode": string(stdErr.Code),
		"message":   stdErr.Message,
		"details":   stdErr.Details,
		"retryable": stdErr.Retryable,
	})

	return stdErr.Message
}

// normalizeError ensures we always have a StandardError
func (h *ErrorHandler) normalizeError(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Something went wrong, please try again",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// Code extracts the error code, or INTERNAL_ERROR for plain errors.
func Code(err error) ErrorCode {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr.Code
	}
	return "INTERNAL_ERROR"
}

// IsRetryable reports whether resubmitting the same form may succeed.
func IsRetryable(err error) bool {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr.Retryable
	}
	return false
}
