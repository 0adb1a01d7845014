package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_TypePredicates(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError("bad input")))
	assert.True(t, IsNotFoundError(NewNotFoundError("missing")))
	assert.True(t, IsForbiddenError(NewForbiddenError("nope")))

	assert.False(t, IsValidationError(NewNotFoundError("missing")))
	assert.False(t, IsNotFoundError(fmt.Errorf("plain error")))
	assert.False(t, IsAppError(nil))
}

func TestGetAppError_Wrapped(t *testing.T) {
	inner := NewNotFoundError("issue not found")
	wrapped := fmt.Errorf("loading detail page: %w", inner)

	appErr := GetAppError(wrapped)
	assert.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeNotFound, appErr.Type)
	assert.True(t, IsNotFoundError(wrapped))
}

func TestAppError_Error(t *testing.T) {
	err := NewValidationError("bad input", "field subject")
	assert.Contains(t, err.Error(), "bad input")
	assert.Contains(t, err.Error(), "field subject")
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(fmt.Errorf("UNIQUE constraint failed: users.id")))
	assert.False(t, IsDuplicateError(fmt.Errorf("no such table: users")))
	assert.False(t, IsDuplicateError(nil))
}
