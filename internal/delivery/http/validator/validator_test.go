package validator

import (
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createPayload struct {
	Name  *string  `json:"name" validate:"required,min=1,max=80"`
	Email *string  `json:"email" validate:"required,email"`
	Price *float64 `json:"price" validate:"required,gte=0.01"`
}

type updatePayload struct {
	Name  *string  `json:"name" validate:"omitempty,min=1,max=80"`
	Email *string  `json:"email" validate:"omitempty,email"`
	Price *float64 `json:"price" validate:"omitempty,gte=0.01"`
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestValidate_Valid(t *testing.T) {
	cv := New()

	err := cv.Validate(&createPayload{
		Name:  strPtr("Espresso Beans"),
		Email: strPtr("peter@example.com"),
		Price: floatPtr(12.50),
	})

	assert.NoError(t, err)
}

func TestValidate_MissingFields(t *testing.T) {
	cv := New()

	err := cv.Validate(&createPayload{})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, map[string][]string{
		"name":  {"Missing data for required field."},
		"email": {"Missing data for required field."},
		"price": {"Missing data for required field."},
	}, validationErr.Fields())
}

func TestValidate_InvalidEmail(t *testing.T) {
	cv := New()

	err := cv.Validate(&createPayload{
		Name:  strPtr("Peter"),
		Email: strPtr("peter.example.com"),
		Price: floatPtr(12.50),
	})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, map[string][]string{
		"email": {"Not a valid email address."},
	}, validationErr.Fields())
}

func TestValidate_TooShortAndBelowMinimum(t *testing.T) {
	cv := New()

	err := cv.Validate(&createPayload{
		Name:  strPtr(""),
		Email: strPtr("peter@example.com"),
		Price: floatPtr(0),
	})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, map[string][]string{
		"name":  {"Shorter than minimum length 1."},
		"price": {"Must be greater than or equal to 0.01."},
	}, validationErr.Fields())
}

func TestValidate_FieldNamesComeFromJSONTags(t *testing.T) {
	cv := New()

	err := cv.Validate(&createPayload{
		Name:  strPtr("Peter"),
		Email: strPtr("nope"),
		Price: floatPtr(1),
	})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields(), "email")
	assert.NotContains(t, validationErr.Fields(), "Email")
}

func TestValidate_PartialPayloadSkipsAbsentFields(t *testing.T) {
	cv := New()

	err := cv.Validate(&updatePayload{
		Email: strPtr("amanda@example.com"),
	})

	assert.NoError(t, err)
}

func TestValidate_PartialPayloadStillChecksPresentFields(t *testing.T) {
	cv := New()

	err := cv.Validate(&updatePayload{
		Price: floatPtr(0),
	})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, map[string][]string{
		"price": {"Must be greater than or equal to 0.01."},
	}, validationErr.Fields())
}
