package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/velora-studio/booking-api/pkg/errors"
)

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	TraceID string            `json:"trace_id,omitempty"`
}

// ErrorHandler maps application errors attached to the gin context onto
// HTTP responses. Validation and conflict errors are client errors with
// distinct statuses so the UI can tell "fix your details" apart from "pick
// another slot".
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		requestID := c.GetString(ContextRequestID)

		for _, e := range c.Errors {
			log.Error().
				Err(e.Err).
				Str("request_id", requestID).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Msg("Request error")
		}

		lastErr := c.Errors.Last().Err
		status := http.StatusInternalServerError
		resp := ErrorResponse{Message: "internal server error", TraceID: requestID}

		var appErr *apperrors.AppError
		if errors.As(lastErr, &appErr) {
			resp.Message = appErr.Message
			resp.Fields = appErr.Fields
			switch appErr.Code {
			case apperrors.ErrValidation:
				status = http.StatusBadRequest
			case apperrors.ErrConflict:
				status = http.StatusConflict
			case apperrors.ErrNotFound:
				status = http.StatusNotFound
			case apperrors.ErrUnauthorized:
				status = http.StatusUnauthorized
			case apperrors.ErrExternal:
				status = http.StatusBadGateway
			}
		}

		resp.Code = status
		c.JSON(status, resp)
	}
}
