package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	err := NotFound("booking", nil)
	assert.Equal(t, "booking not found", err.Error())

	wrapped := External("payment", stderrors.New("connection refused"))
	assert.Equal(t, "payment service unavailable: connection refused", wrapped.Error())
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Internal(cause)
	assert.True(t, stderrors.Is(err, cause))
}

func TestIsMatchesCodeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("creating booking: %w", Conflict("slot taken"))

	assert.True(t, Is(err, ErrConflict))
	assert.False(t, Is(err, ErrNotFound))
	assert.False(t, Is(stderrors.New("plain"), ErrConflict))
	assert.False(t, Is(nil, ErrConflict))
}

func TestValidationCarriesFields(t *testing.T) {
	err := Validation("invalid booking request", map[string]string{"email": "is required"})
	assert.Equal(t, ErrValidation, err.Code)
	assert.Equal(t, "is required", err.Fields["email"])
}
