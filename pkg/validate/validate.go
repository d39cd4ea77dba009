package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "shop-services/pkg/errors"
)

// Validator validates request DTOs against their struct tags and reports
// failures as ValidationError so the HTTP layer maps them to 422.
type Validator struct {
	validate *validator.Validate
}

// New creates a new Validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Struct validates in and returns a ValidationError describing every failed
// field, or nil when the value is valid.
func (v *Validator) Struct(in any) error {
	err := v.validate.Struct(in)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewValidationError("", err.Error())
	}

	var messages []string
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
		case "email":
			messages = append(messages, fmt.Sprintf("%s must be a valid email", e.Field()))
		case "min":
			messages = append(messages, fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
		}
	}
	return apperrors.NewValidationError("", strings.Join(messages, ", "))
}
