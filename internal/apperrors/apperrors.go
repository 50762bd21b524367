package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrValidation     = errors.New("validation failed")
	ErrInvalidRequest = errors.New("invalid request body")

	ErrUpstream   = errors.New("upstream request failed")
	ErrDataSource = errors.New("unable to fetch comments from data source")
)

// ValidationError reports the first field of a review that broke its contract.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string        { return e.Message }
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
