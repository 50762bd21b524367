package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("rating", "rating must be between %d and %d", 1, 5)

	assert.Equal(t, "rating must be between 1 and 5", err.Error())
	assert.Equal(t, "rating", err.Field)
	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrDataSource)

	wrapped := fmt.Errorf("add review: %w", err)

	var verr *ValidationError
	require.True(t, errors.As(wrapped, &verr))
	assert.Equal(t, "rating", verr.Field)
	assert.ErrorIs(t, wrapped, ErrValidation)
}
