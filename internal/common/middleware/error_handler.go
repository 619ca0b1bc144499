package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"tg-info-backend/internal/common/errors"
	"tg-info-backend/internal/features/profile/models"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"

	MsgInternalError = "Internal server error"
	MsgNotFound      = "Endpoint not found"
)

// Recovery turns a panic into a 500 with the JSON error envelope.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Interface("panic", recovered).
			Str("stack", string(debug.Stack())).
			Msg("Panic recovered")

		c.AbortWithStatusJSON(http.StatusInternalServerError, models.NewErrorResponse(MsgInternalError))
	})
}

// RequestID reuses the caller's X-Request-ID or generates one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// NotFound answers unknown routes.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.NewErrorResponse(MsgNotFound))
	}
}

// ErrorWriter renders handler errors as the JSON error envelope.
type ErrorWriter struct {
	log zerolog.Logger
}

func NewErrorWriter(log zerolog.Logger) *ErrorWriter {
	return &ErrorWriter{log: log}
}

// Abort logs err and writes it with the status that matches its code.
func (w *ErrorWriter) Abort(c *gin.Context, err error) {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		appErr = errors.Wrap(err, errors.ErrCodeInternal, err.Error())
	}
	appErr.WithRequestID(GetRequestID(c)).
		WithContext("path", c.Request.URL.Path).
		WithContext("method", c.Request.Method)

	w.logError(c, appErr)
	c.AbortWithStatusJSON(StatusCode(appErr), models.NewErrorResponse(PublicMessage(appErr)))
}

// StatusCode maps an error code onto the HTTP contract. Every remote or
// internal failure is a 500.
func StatusCode(appErr *errors.AppError) int {
	switch appErr.Code {
	case errors.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case errors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is the text placed in the response body. Raw API failures
// carry the upstream reason so callers can tell them apart.
func PublicMessage(appErr *errors.AppError) string {
	if appErr.Code == errors.ErrCodeTelegramAPI && appErr.Cause != nil {
		return fmt.Sprintf("%s: %v", appErr.Message, appErr.Cause)
	}
	return appErr.Message
}

func (w *ErrorWriter) logError(c *gin.Context, appErr *errors.AppError) {
	event := w.log.Error()
	switch {
	case appErr.IsValidation():
		event = w.log.Info()
	case appErr.IsUnauthorized():
		event = w.log.Warn()
	case appErr.IsNotFound():
		event = w.log.Info()
	case !appErr.IsInternal():
		event = w.log.Warn()
	}

	event = event.
		Str("request_id", appErr.RequestID).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("error_code", string(appErr.Code)).
		Str("error_message", appErr.Message)
	if len(appErr.Details) > 0 {
		event = event.Interface("details", appErr.Details)
	}
	if appErr.Cause != nil {
		event = event.AnErr("cause", appErr.Cause)
	}
	event.Msg("Request failed")
}

// GetRequestID returns the id set by RequestID, or "unknown".
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(requestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return "unknown"
}
