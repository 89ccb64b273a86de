package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainErrorsWrapBaseSentinels(t *testing.T) {
	assert.ErrorIs(t, ErrUserNotFound, ErrResourceNotFound)
	assert.ErrorIs(t, ErrPaperNotFound, ErrResourceNotFound)
	assert.ErrorIs(t, ErrArticleNotFound, ErrResourceNotFound)
	assert.ErrorIs(t, ErrUsernameAlreadyUsed, ErrConflict)
	assert.ErrorIs(t, ErrAlreadyPublished, ErrConflict)
	assert.ErrorIs(t, ErrEventFull, ErrValidationFailed)
	assert.ErrorIs(t, ErrTopicLocked, ErrPermissionDenied)
}

func TestDomainErrorIdentitySurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("review paper 42: %w", ErrPaperNotFound)

	assert.ErrorIs(t, wrapped, ErrPaperNotFound)
	assert.ErrorIs(t, wrapped, ErrResourceNotFound)
	assert.NotErrorIs(t, wrapped, ErrArticleNotFound)
}

func TestCustomErrorMessage(t *testing.T) {
	err := NewValidationError("per_page must be positive")

	assert.Equal(t, "per_page must be positive", err.Error())
	assert.ErrorIs(t, err, ErrValidationFailed)

	var custom *CustomError
	assert.True(t, errors.As(err, &custom))
	assert.Equal(t, "per_page must be positive", custom.Message)
}
