package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/velora-studio/booking-api/pkg/errors"
)

func performWithError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/boom", func(c *gin.Context) {
		c.Error(err)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestErrorHandlerStatusMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{apperrors.Validation("bad input", nil), http.StatusBadRequest},
		{apperrors.Conflict("slot taken"), http.StatusConflict},
		{apperrors.NotFound("booking", nil), http.StatusNotFound},
		{apperrors.Unauthorized(nil), http.StatusUnauthorized},
		{apperrors.External("payment", nil), http.StatusBadGateway},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		w := performWithError(t, tt.err)
		assert.Equal(t, tt.status, w.Code)
	}
}

func TestErrorHandlerIncludesFields(t *testing.T) {
	w := performWithError(t, apperrors.Validation("invalid booking request", map[string]string{
		"email": "is required",
	}))

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid booking request", resp.Message)
	assert.Equal(t, "is required", resp.Fields["email"])
}

func TestErrorHandlerHidesInternalDetail(t *testing.T) {
	w := performWithError(t, assert.AnError)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Message)
}
