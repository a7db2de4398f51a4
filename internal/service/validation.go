package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/riskcheck-api/internal/models"
)

type closedVariant interface {
	Valid() bool
}

// NewValidator returns a validator that reports fields by their json names.
// The "option" tag accepts a value only when its type declares it valid.
func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("option", validOption)
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return validate
}

// FieldErrors flattens validation errors into field name to message pairs.
// It returns nil when err is not a validation error.
func FieldErrors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	out := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		out[fieldErr.Field()] = fieldMessage(fieldErr)
	}
	return out
}

func fieldMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fieldErr.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fieldErr.Param())
	case "option":
		if options := optionsFor(fieldErr.Value()); len(options) > 0 {
			return fmt.Sprintf("must be one of: %s", strings.Join(options, ", "))
		}
		return "is not a recognised option"
	default:
		return fmt.Sprintf("failed %s validation", fieldErr.Tag())
	}
}

func validOption(fl validator.FieldLevel) bool {
	variant, ok := fl.Field().Interface().(closedVariant)
	return ok && variant.Valid()
}

func optionsFor(value interface{}) []string {
	switch value.(type) {
	case models.Gender:
		return stringsOf(models.GenderOptions())
	case models.SleepDuration:
		return stringsOf(models.SleepDurationOptions())
	case models.DietaryHabit:
		return stringsOf(models.DietaryHabitOptions())
	case models.Answer:
		return stringsOf(models.AnswerOptions())
	}
	return nil
}
