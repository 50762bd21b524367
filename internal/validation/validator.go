// package validation checks the shape of decoded request payloads.
// It uses the go-playground/validator library and reports fields by their JSON names.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// init makes field errors carry the JSON key instead of the Go field name.
func init() {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		if name == "" {
			return fld.Name
		}

		return name
	})
}

// ValidationError lists every field of a payload that failed its tags.
type ValidationError struct {
	Missing []string
	Errors  []string
}

// Error joins missing fields into one message, followed by any other failures.
func (v *ValidationError) Error() string {
	parts := make([]string, 0, len(v.Errors)+1)

	if len(v.Missing) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(v.Missing, ", "))
	}

	parts = append(parts, v.Errors...)

	return strings.Join(parts, ", ")
}

// ValidateStruct runs the validation tags of s.
// On failure it returns a *ValidationError.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate: %w", err)
	}

	verr := &ValidationError{}

	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			verr.Missing = append(verr.Missing, fe.Field())
		default:
			verr.Errors = append(verr.Errors, fmt.Sprintf(
				"field '%s' failed on the '%s' tag",
				fe.Field(),
				fe.Tag(),
			))
		}
	}

	return verr
}
