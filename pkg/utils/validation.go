package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError describes one failed validation rule
type FieldError struct {
	Field string
	Tag   string
	Param string
}

// ValidationError collects the failed rules of a struct
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, formatFieldError(f))
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether any field failed the given tag
func (e *ValidationError) Has(tag string) bool {
	for _, f := range e.Fields {
		if f.Tag == tag {
			return true
		}
	}
	return false
}

// ValidateStruct validates a struct based on its validation tags
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return toValidationError(err)
	}
	return nil
}

// toValidationError converts validator errors into a ValidationError
func toValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	out := &ValidationError{}
	for _, e := range validationErrors {
		out.Fields = append(out.Fields, FieldError{
			Field: e.Field(),
			Tag:   e.Tag(),
			Param: e.Param(),
		})
	}
	return out
}

// formatFieldError formats a single field validation error
func formatFieldError(e FieldError) string {
	field := strings.ToLower(e.Field)
	if field == "" {
		field = "value"
	}

	switch e.Tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, e.Param)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
