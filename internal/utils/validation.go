package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/plateful/Plateful_Backend/internal/constants"
)

// validate is the singleton validator instance used for all struct validation.
var validate = validator.New()

// DecodeJSON decodes a JSON request body into the given struct.
// It limits the body size and rejects unknown fields so that malformed
// payloads fail fast with a useful message.
func DecodeJSON(r *http.Request, dst interface{}) error {
	// Limit the size of the request body
	r.Body = http.MaxBytesReader(nil, r.Body, constants.MaxRequestBodySize)

	// Create a JSON decoder that rejects unknown fields
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	// Decode the request body
	err := decoder.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return NewBadRequestError(fmt.Sprintf("%s (at position %d)", constants.MsgMalformedJSON, syntaxError.Offset))

		case errors.Is(err, io.ErrUnexpectedEOF):
			return NewBadRequestError(constants.MsgMalformedJSON)

		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return NewValidationError(unmarshalTypeError.Field, "invalid value type")
			}
			return NewBadRequestError(fmt.Sprintf("Request body contains an invalid value (at position %d)", unmarshalTypeError.Offset))

		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			fieldName = strings.Trim(fieldName, "\"")
			return NewBadRequestError(fmt.Sprintf("Request body contains unknown field %s", fieldName))

		case errors.Is(err, io.EOF):
			return NewBadRequestError(constants.MsgEmptyRequestBody)

		case errors.As(err, &maxBytesError):
			return NewBadRequestError(constants.MsgRequestBodyTooLarge)

		default:
			return NewBadRequestError(constants.MsgMalformedJSON)
		}
	}

	// Check for additional JSON objects in the body
	err = decoder.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return NewBadRequestError("Request body must only contain a single JSON object")
	}

	return nil
}

// ValidateStruct validates a struct using the validator package and returns
// an AppError describing the first set of validation failures.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var invalidValidationError *validator.InvalidValidationError
	if errors.As(err, &invalidValidationError) {
		return NewInternalServerError(err)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		details := make(map[string]string, len(validationErrors))
		for _, fieldErr := range validationErrors {
			field := strings.ToLower(fieldErr.Field())
			details[field] = getErrorMessage(fieldErr)
		}
		return NewValidationErrorWithDetails(details)
	}

	return NewInternalServerError(err)
}

// DecodeAndValidate decodes a JSON request body and validates the result.
// This is the standard entry point used by handlers for request bodies.
func DecodeAndValidate(r *http.Request, dst interface{}) error {
	if err := DecodeJSON(r, dst); err != nil {
		return err
	}

	return ValidateStruct(dst)
}

// getErrorMessage returns a human-readable message for a validation error
func getErrorMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Must be at least %s", fieldErr.Param())
	case "max":
		return fmt.Sprintf("Must not exceed %s", fieldErr.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fieldErr.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", fieldErr.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fieldErr.Param())
	case "datetime":
		return fmt.Sprintf("Must be a date in %s format", fieldErr.Param())
	case "url":
		return "Must be a valid URL"
	default:
		return fmt.Sprintf("Failed validation: %s", fieldErr.Tag())
	}
}

// NewValidationErrorWithDetails creates a validation error carrying a map of
// per-field messages. The first entry doubles as the top-level message.
func NewValidationErrorWithDetails(details map[string]string) *AppError {
	message := "Validation failed"
	for field, msg := range details {
		message = fmt.Sprintf("%s: %s", field, msg)
		break
	}

	appErr := NewValidationError("", message)
	appErr.Details = make(map[string]any, len(details))
	for field, msg := range details {
		appErr.Details[field] = msg
	}
	return appErr
}

// ValidationDetails extracts the per-field messages from a validation error,
// suitable for the details section of an error response.
func ValidationDetails(err *AppError) map[string]string {
	if err == nil {
		return nil
	}
	if len(err.Details) == 0 {
		if err.Field != "" {
			return map[string]string{err.Field: err.Message}
		}
		return nil
	}

	details := make(map[string]string, len(err.Details))
	for field, msg := range err.Details {
		if s, ok := msg.(string); ok {
			details[field] = s
		}
	}
	return details
}
