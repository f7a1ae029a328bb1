package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/lernify-road/roadmap-service/internal/models"
)

// ValidationError is one failed field rule.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule,omitempty"`
}

type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	if len(ve) == 1 {
		return fmt.Sprintf("validation failed: %s %s", ve[0].Field, ve[0].Message)
	}
	return fmt.Sprintf("validation failed: %d field errors", len(ve))
}

// Validator validates request structs against their tags plus the
// registered business rules.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator with the service's custom rules registered.
func New() *Validator {
	validate := validator.New()

	v := &Validator{validate: validate}
	v.registerBusinessRules()

	return v
}

// Validate validates a struct and returns nil when every rule passes.
func (v *Validator) Validate(s interface{}) ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var errors ValidationErrors
	for _, fieldErr := range err.(validator.ValidationErrors) {
		errors = append(errors, ValidationError{
			Field:   fieldErr.Field(),
			Message: errorMessage(fieldErr),
			Value:   fieldErr.Value(),
			Rule:    fieldErr.Tag(),
		})
	}
	return errors
}

func (v *Validator) registerBusinessRules() {
	// qualification restricts registration to the IT allow-list.
	_ = v.validate.RegisterValidation("qualification", func(fl validator.FieldLevel) bool {
		return models.IsAllowedQualification(fl.Field().String())
	})
}

func errorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters or items", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters or items", err.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", err.Param())
	case "numeric":
		return "must contain only digits"
	case "qualification":
		return "must be an IT-related qualification"
	default:
		return fmt.Sprintf("failed %s validation", err.Tag())
	}
}
