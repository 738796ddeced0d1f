// Package validator adapts go-playground/validator to echo's Validator
// interface and translates rule failures into the domain's field-level
// validation error.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator.Validate instance for echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds the validator. Field names in error output come from json tags
// so responses match the wire payload, not Go identifiers.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: validate}
}

// Validate implements echo.Validator. A payload that breaks one or more rules
// yields a *domainerrors.ValidationError mapping each field to every failing
// rule's message; any other failure is returned as-is.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "validation failed")
	}

	fields := make(map[string][]string, len(verrs))
	for _, fieldErr := range verrs {
		fields[fieldErr.Field()] = append(fields[fieldErr.Field()], messageFor(fieldErr))
	}

	return domainerrors.NewValidationError(fields)
}

// messageFor renders a single rule failure as a human-readable message.
func messageFor(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "Missing data for required field."
	case "email":
		return "Not a valid email address."
	case "min":
		return fmt.Sprintf("Shorter than minimum length %s.", fieldErr.Param())
	case "max":
		return fmt.Sprintf("Longer than maximum length %s.", fieldErr.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s.", fieldErr.Param())
	default:
		return fmt.Sprintf("Failed validation rule '%s'.", fieldErr.Tag())
	}
}
