package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorCode identifies an error kind
type ErrorCode string

const (
	// Generic
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// Remote platform
	ErrCodeRemoteNotFound    ErrorCode = "REMOTE_NOT_FOUND"
	ErrCodeRemoteTimeout     ErrorCode = "REMOTE_TIMEOUT"
	ErrCodeRemoteUnavailable ErrorCode = "REMOTE_UNAVAILABLE"
	ErrCodeTelegramAPI       ErrorCode = "TELEGRAM_API_ERROR"
	ErrCodeRateLimit         ErrorCode = "RATE_LIMIT_EXCEEDED"

	// Degraded data, absorbed into the response
	ErrCodePartialEnrichment ErrorCode = "PARTIAL_ENRICHMENT_FAILURE"
	ErrCodePhotoDownload     ErrorCode = "PHOTO_DOWNLOAD_FAILURE"

	// Cache
	ErrCodeCacheError ErrorCode = "CACHE_ERROR"
)

// AppError is a typed application error
type AppError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Context   map[string]string      `json:"context,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	RequestID string                 `json:"request_id,omitempty"`
	Cause     error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches another AppError by code, so sentinel values work with errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func (e *AppError) IsNotFound() bool {
	return e.Code == ErrCodeNotFound || e.Code == ErrCodeRemoteNotFound
}

func (e *AppError) IsValidation() bool {
	return e.Code == ErrCodeInvalidInput
}

func (e *AppError) IsUnauthorized() bool {
	return e.Code == ErrCodeUnauthorized
}

// IsDegraded reports kinds that are logged and absorbed, never failing a request.
func (e *AppError) IsDegraded() bool {
	switch e.Code {
	case ErrCodePartialEnrichment, ErrCodePhotoDownload, ErrCodeCacheError:
		return true
	}
	return false
}

func (e *AppError) IsInternal() bool {
	switch e.Code {
	case ErrCodeInternal, ErrCodeTelegramAPI, ErrCodeRemoteUnavailable:
		return true
	}
	return false
}

func (e *AppError) WithContext(key, value string) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

func (e *AppError) WithRequestID(requestID string) *AppError {
	e.RequestID = requestID
	return e
}

// New creates an application error
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// Wrap attaches a code and message to an existing error
func Wrap(err error, code ErrorCode, message string) *AppError {
	appErr := New(code, message)
	appErr.Cause = err
	return appErr
}

func NewInvalidInputError(field, reason string) *AppError {
	return New(ErrCodeInvalidInput, reason).
		WithDetail("field", field)
}

func NewRemoteNotFoundError(handle string, err error) *AppError {
	return Wrap(err, ErrCodeRemoteNotFound, fmt.Sprintf("No user or channel found with username %q", handle)).
		WithDetail("handle", handle)
}

func NewRemoteTimeoutError(operation string, timeout time.Duration, err error) *AppError {
	return Wrap(err, ErrCodeRemoteTimeout, fmt.Sprintf("Telegram request timed out after %s", timeout)).
		WithDetail("operation", operation)
}

func NewRemoteUnavailableError(reason string) *AppError {
	return New(ErrCodeRemoteUnavailable, fmt.Sprintf("Telegram client unavailable: %s", reason))
}

func NewTelegramAPIError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeTelegramAPI, fmt.Sprintf("Telegram API operation failed: %s", operation)).
		WithDetail("operation", operation)
}

func NewRateLimitError(service string, retryAfter time.Duration) *AppError {
	return New(ErrCodeRateLimit, fmt.Sprintf("Rate limit exceeded for %s", service)).
		WithDetail("service", service).
		WithDetail("retry_after", retryAfter.String())
}

func NewPartialEnrichmentError(entityID int64, err error) *AppError {
	return Wrap(err, ErrCodePartialEnrichment, "Channel enrichment failed").
		WithDetail("entity_id", entityID)
}

func NewPhotoDownloadError(entityID int64, err error) *AppError {
	return Wrap(err, ErrCodePhotoDownload, "Profile photo download failed").
		WithDetail("entity_id", entityID)
}

func NewCacheError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeCacheError, fmt.Sprintf("Cache operation failed: %s", operation)).
		WithDetail("operation", operation)
}

func NewUnauthorizedError(reason string) *AppError {
	return New(ErrCodeUnauthorized, fmt.Sprintf("Unauthorized: %s", reason)).
		WithDetail("reason", reason)
}

// AsAppError finds the first AppError in err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if err == nil {
		return nil, false
	}
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err's chain carries an AppError with code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}
