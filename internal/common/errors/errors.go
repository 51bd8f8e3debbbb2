// Package errors provides standardized error handling for the intake pipeline.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Trust / security errors. Fatal for the request, no business logic runs.
	ErrCodeOriginNotAllowed ErrorCode = "ORIGIN_NOT_ALLOWED"
	ErrCodeCSRFInvalid      ErrorCode = "CSRF_INVALID"

	// Validation / business rule errors. Local and recoverable.
	ErrCodePayloadParse     ErrorCode = "PAYLOAD_PARSE_ERROR"
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodePartnerRequired  ErrorCode = "PARTNER_REQUIRED"
	ErrCodeInvalidUserType  ErrorCode = "INVALID_USER_TYPE"

	// Upstream service errors. Reported verbatim, never retried here.
	ErrCodeStorageUploadFailed      ErrorCode = "STORAGE_UPLOAD_FAILED"
	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeDatabaseInsertFailed     ErrorCode = "DATABASE_INSERT_FAILED"
	ErrCodeNotificationSendFailed   ErrorCode = "NOTIFICATION_SEND_FAILED"
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

// NewOriginNotAllowedError creates a non-retryable origin rejection.
func NewOriginNotAllowedError(origin string) *StandardError {
	return &StandardError{
		Code:      ErrCodeOriginNotAllowed,
		Message:   "Request origin is not allowed",
		Details:   fmt.Sprintf("origin: %s", origin),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCSRFInvalidError creates a non-retryable CSRF rejection.
func NewCSRFInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCSRFInvalid,
		Message:   "Invalid CSRF token",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPayloadParseError creates a non-retryable payload parse error.
func NewPayloadParseError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodePayloadParse,
		Message:   "Submission payload could not be parsed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationFailedError creates a non-retryable validation error.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Submission data validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPartnerRequiredError creates a non-retryable business rule error.
func NewPartnerRequiredError() *StandardError {
	return &StandardError{
		Code:      ErrCodePartnerRequired,
		Message:   "At least one VC partner must be selected",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidUserTypeError creates a non-retryable discriminant error.
func NewInvalidUserTypeError(userType string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidUserType,
		Message:   "Unsupported user type",
		Details:   fmt.Sprintf("userType: %s", userType),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewStorageUploadFailedError creates a retryable-class storage error.
func NewStorageUploadFailedError(objectPath string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStorageUploadFailed,
		Message:   "Pitch deck upload failed",
		Details:   fmt.Sprintf("path: %s, error: %s", objectPath, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable-class database error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseInsertFailedError creates a retryable-class database error.
// The intake pipeline reports these verbatim and does not retry.
func NewDatabaseInsertFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseInsertFailed,
		Message:   "Database insert operation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationSendFailedError creates a retryable-class notification error.
func NewNotificationSendFailedError(channel string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Notification delivery failed",
		Details:   fmt.Sprintf("channel: %s, error: %s", channel, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "CSRF") || strings.Contains(codeStr, "ORIGIN"):
		return "SECURITY"
	case strings.Contains(codeStr, "VALIDATION") || strings.Contains(codeStr, "PARSE") ||
		strings.Contains(codeStr, "PARTNER") || strings.Contains(codeStr, "USER_TYPE"):
		return "VALIDATION"
	case strings.Contains(codeStr, "STORAGE"):
		return "STORAGE"
	case strings.Contains(codeStr, "DATABASE"):
		return "DATABASE"
	case strings.Contains(codeStr, "NOTIFICATION"):
		return "NOTIFICATION"
	default:
		return "OTHER"
	}
}

// IsSecurityError reports whether the code is a request-fatal trust error.
func IsSecurityError(code ErrorCode) bool {
	return GetErrorCategory(code) == "SECURITY"
}
