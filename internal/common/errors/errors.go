// Package errors provides standardized error handling for the enquiry pipeline.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeFileTooLarge     ErrorCode = "FILE_TOO_LARGE"

	ErrCodeSessionMissing  ErrorCode = "SESSION_MISSING"
	ErrCodeSessionRejected ErrorCode = "SESSION_REJECTED"

	ErrCodeUploadNotConfigured ErrorCode = "UPLOAD_NOT_CONFIGURED"
	ErrCodeUploadFailed        ErrorCode = "UPLOAD_FAILED"

	ErrCodeSubmissionFailed ErrorCode = "SUBMISSION_FAILED"
	ErrCodeParseError       ErrorCode = "PARSE_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewValidationFailedError creates a non-retryable local validation error.
// The details list the fields that block submission.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Please fill all required fields",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewFileTooLargeError creates a non-retryable file size error.
func NewFileTooLargeError(name string, size, limit int64) *StandardError {
	return &StandardError{
		Code:      ErrCodeFileTooLarge,
		Message:   "File exceeds the maximum allowed size",
		Details:   fmt.Sprintf("file: %s, size: %d, limit: %d", name, size, limit),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionMissingError signals that no bearer token is stored.
func NewSessionMissingError() *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionMissing,
		Message:   "Please login to continue",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionRejectedError signals that the backend rejected the token (401).
func NewSessionRejectedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionRejected,
		Message:   "Your session has expired, please login again",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUploadNotConfiguredError signals missing asset-host credentials.
func NewUploadNotConfiguredError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUploadNotConfigured,
		Message:   "File upload service is not configured",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUploadFailedError creates a retryable upload error. The whole submission
// attempt still aborts; retryable only marks that resubmitting may succeed.
func NewUploadFailedError(fileName string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeUploadFailed,
		Message:   "File upload failed",
		Details:   fmt.Sprintf("file: %s, error: %v", fileName, err),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSubmissionFailedError surfaces a backend rejection. When the backend
// provided a message it is used verbatim, otherwise a generic fallback.
func NewSubmissionFailedError(backendMessage string, status int) *StandardError {
	msg := backendMessage
	if msg == "" {
		msg = "Submission failed, please try again"
	}
	return &StandardError{
		Code:      ErrCodeSubmissionFailed,
		Message:   msg,
		Details:   fmt.Sprintf("status: %d", status),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewParseError creates a non-retryable response decoding error.
func NewParseError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeParseError,
		Message:   "Unexpected response from server",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
