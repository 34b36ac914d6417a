package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"dailywage-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	// Auth fields
	"Name":     "Name",
	"Phone":    "Phone",
	"Password": "Password",
	"Role":     "Role",

	// Provider profile fields
	"WorkType":      "Work type",
	"BudgetPerDay":  "Budget per day",
	"WorkersNeeded": "Workers needed",
	"WorkingHours":  "Working hours",
	"CustomHours":   "Custom hours",
	"Location":      "Location",
	"WorkStartTime": "Work start time",

	// Seeker profile fields
	"WorkTypes":         "Work types",
	"ExpectedWage":      "Expected wage",
	"HoursAvailability": "Hours availability",
	"AvailableDays":     "Available days",
	"Experience":        "Experience",

	// Listing filters
	"MaxBudget": "Max budget",
	"MinBudget": "Min budget",
}

// fieldMessages overrides the generated message for a field+tag pair.
var fieldMessages = map[string]string{
	"WorkTypes.required":     "Select at least one work type",
	"WorkTypes.min":          "Select at least one work type",
	"WorkersNeeded.required": "Workers needed must be at least 1",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// ToAppError turns the first failed rule into a 400 naming the field.
// Errors that did not come from the validator become a generic 400.
func ToAppError(err error) *apperror.AppError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return apperror.BadRequest("Invalid request")
	}
	first := validationErrors[0]
	return apperror.Validation(first.Field(), formatSingleError(first))
}

// decodeMessages overrides the type-mismatch message for a JSON field.
var decodeMessages = map[string]string{
	"workTypes": "Select at least one work type",
}

// DecodeError turns a request body decoding failure into a 400. A value of
// the wrong type is reported against its field; anything else is a generic
// invalid body.
func DecodeError(err error) *apperror.AppError {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Field == "" {
		return apperror.BadRequest("Invalid request body")
	}

	field := typeErr.Field
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[:i]
	}
	if msg, ok := decodeMessages[field]; ok {
		return apperror.Validation(field, msg)
	}
	return apperror.Validation(field, fmt.Sprintf("%s is invalid", getFieldLabel(exportedName(field))))
}

// exportedName maps a JSON key to its struct field name: "budgetPerDay" -> "BudgetPerDay".
func exportedName(jsonKey string) string {
	if jsonKey == "" {
		return jsonKey
	}
	return strings.ToUpper(jsonKey[:1]) + jsonKey[1:]
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	fieldName := baseFieldName(e.StructField())
	label := getFieldLabel(fieldName)
	tag := e.Tag()
	param := e.Param()

	if msg, ok := fieldMessages[fieldName+"."+tag]; ok {
		return msg
	}

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", label)

	case "required_if":
		parts := strings.Fields(param)
		if len(parts) == 2 {
			return fmt.Sprintf("%s is required when %s is %s", label, strings.ToLower(getFieldLabel(parts[0])), parts[1])
		}
		return fmt.Sprintf("%s is required", label)

	case "notblank":
		return fmt.Sprintf("%s must not be blank", label)

	case "min", "gte":
		switch e.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		case reflect.Slice:
			return fmt.Sprintf("%s must contain at least %s item(s)", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)

	case "max", "lte":
		switch e.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s must be at most %s characters", label, param)
		case reflect.Slice:
			return fmt.Sprintf("%s must contain at most %s item(s)", label, param)
		}
		return fmt.Sprintf("%s must be at most %s", label, param)

	case "gt":
		return fmt.Sprintf("%s must be greater than %s", label, param)

	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Fields(param), ", "))

	case "valid_name":
		return fmt.Sprintf("%s may only contain letters, spaces and . ' -", label)

	case "valid_phone":
		return fmt.Sprintf("%s must be a valid phone number (7-15 digits, optional +)", label)

	default:
		return fmt.Sprintf("%s is invalid (%s)", label, tag)
	}
}

// baseFieldName strips a slice index: "WorkTypes[2]" -> "WorkTypes".
func baseFieldName(name string) string {
	if i := strings.IndexByte(name, '['); i >= 0 {
		return name[:i]
	}
	return name
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
			r += 'a' - 'A'
		}
		result.WriteRune(r)
	}
	return result.String()
}
