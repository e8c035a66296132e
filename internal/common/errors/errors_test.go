// internal/common/errors/errors_test.go
package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type captureLogger struct {
	lastMsg    string
	lastFields map[string]interface{}
}

func (c *captureLogger) Error(msg string, fields map[string]interface{}) {
	c.lastMsg = msg
	c.lastFields = fields
}

// ==========================
// Constructors
// ==========================

func TestConstructors(t *testing.T) {
	tests := []struct {
		name      string
		err       *StandardError
		code      ErrorCode
		retryable bool
		message   string
	}{
		{"validation", NewValidationFailedError("email: required"), ErrCodeValidationFailed, false, "Please fill all required fields"},
		{"file too large", NewFileTooLargeError("big.pdf", 6000000, 5242880), ErrCodeFileTooLarge, false, "File exceeds the maximum allowed size"},
		{"session missing", NewSessionMissingError(), ErrCodeSessionMissing, false, "Please login to continue"},
		{"session rejected", NewSessionRejectedError("401"), ErrCodeSessionRejected, false, "Your session has expired, please login again"},
		{"upload unconfigured", NewUploadNotConfiguredError("no preset"), ErrCodeUploadNotConfigured, false, "File upload service is not configured"},
		{"upload failed", NewUploadFailedError("a.pdf", fmt.Errorf("timeout")), ErrCodeUploadFailed, true, "File upload failed"},
		{"submission with backend message", NewSubmissionFailedError("Country not served", 422), ErrCodeSubmissionFailed, true, "Country not served"},
		{"submission fallback", NewSubmissionFailedError("", 500), ErrCodeSubmissionFailed, true, "Submission failed, please try again"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.retryable, tt.err.Retryable)
			assert.Equal(t, tt.message, tt.err.Message)
			assert.False(t, tt.err.Timestamp.IsZero())
		})
	}
}

// ==========================
// Handler
// ==========================

func TestErrorHandler_StandardError(t *testing.T) {
	log := &captureLogger{}
	h := NewErrorHandler(log)

	msg := h.Handle("pcc-legalization", NewSessionMissingError())

	assert.Equal(t, "Please login to continue", msg)
	assert.Equal(t, "submission failed", log.lastMsg)
	assert.Equal(t, "pcc-legalization", log.lastFields["form"])
	assert.Equal(t, "SESSION_MISSING", log.lastFields["errorCode"])
}

func TestErrorHandler_PlainErrorNormalized(t *testing.T) {
	log := &captureLogger{}
	h := NewErrorHandler(log)

	msg := h.Handle("e-visa", fmt.Errorf("dial tcp: connection refused"))

	assert.Equal(t, "Something went wrong, please try again", msg)
	assert.Equal(t, "INTERNAL_ERROR", log.lastFields["errorCode"])
}

func TestCodeAndIsRetryable(t *testing.T) {
	assert.Equal(t, ErrCodeUploadFailed, Code(NewUploadFailedError("a.pdf", fmt.Errorf("x"))))
	assert.Equal(t, ErrorCode("INTERNAL_ERROR"), Code(fmt.Errorf("plain")))

	assert.True(t, IsRetryable(NewSubmissionFailedError("", 503)))
	assert.False(t, IsRetryable(NewValidationFailedError("x")))
	assert.False(t, IsRetryable(fmt.Errorf("plain")))
}
