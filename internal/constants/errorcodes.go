// Package constants provides shared constant values used throughout the application.
//
// The errorcodes.go file defines constants related to error handling,
// categorization, and messaging. These constants ensure consistent error
// reporting and handling throughout the application. User-facing error
// messages are carefully crafted to be informative without revealing
// implementation details.
package constants

// User-Facing Error Messages define standardized messages that can be safely presented to users.
const (
	// MsgAuthRequired indicates that the user must authenticate to access the resource.
	MsgAuthRequired = "Authentication required"

	// MsgAccessDenied indicates that the user lacks permission for the requested action.
	MsgAccessDenied = "You don't have permission to access this resource"

	// MsgInternalServerError provides a generic server error message.
	MsgInternalServerError = "An internal server error occurred"

	// MsgTokenExpired indicates that the user's authentication token has expired.
	MsgTokenExpired = "Authentication token has expired"

	// MsgInvalidToken indicates that the provided token is invalid.
	MsgInvalidToken = "Invalid token"

	// MsgRequestBodyTooLarge indicates that the request payload exceeds size limits.
	MsgRequestBodyTooLarge = "Request body too large"

	// MsgEmptyRequestBody indicates that a request body was expected but not provided.
	MsgEmptyRequestBody = "Request body must not be empty"

	// MsgMalformedJSON indicates that the request body contains invalid JSON.
	MsgMalformedJSON = "Request body contains malformed JSON"

	// MsgResourceNotFound indicates that the requested resource does not exist.
	MsgResourceNotFound = "The requested resource could not be found"

	// MsgResourceAlreadyExists indicates a duplicate resource conflict.
	MsgResourceAlreadyExists = "A resource with the same unique identifier already exists"

	// MsgMethodNotAllowed indicates that the HTTP method is not supported for the endpoint.
	MsgMethodNotAllowed = "This method is not allowed for this resource"

	// MsgUnknownCategory indicates that a catalog category path segment is not recognized.
	MsgUnknownCategory = "Unknown catalog category"
)

// Database Error Types define constants for recognizing and handling database-specific errors.
const (
	// PGErrorDuplicateConstraint is the PostgreSQL error code for unique constraint violations.
	PGErrorDuplicateConstraint = "23505"

	// PGErrorForeignKeyConstraint is the PostgreSQL error code for foreign key violations.
	PGErrorForeignKeyConstraint = "23503"

	// PGErrorNotNullConstraint is the PostgreSQL error code for not-null constraint violations.
	PGErrorNotNullConstraint = "23502"
)

// Logger Constants define values used for structured logging.
const (
	// LogCategoryPreferences is the log category for preference-related events.
	LogCategoryPreferences = "preferences"

	// LogCategoryRecipes is the log category for recipe-related events.
	LogCategoryRecipes = "recipes"

	// LogCategoryPlans is the log category for meal plan events.
	LogCategoryPlans = "plans"

	// LogEventPreferenceReplace is the log event type for replace-all preference writes.
	LogEventPreferenceReplace = "preference_replace"

	// LogEventPreferenceUpsert is the log event type for nutrition target upserts.
	LogEventPreferenceUpsert = "preference_upsert"

	// LogEventPreferenceClear is the log event type for clearing a category.
	LogEventPreferenceClear = "preference_clear"

	// LogRedactedValue is used to replace sensitive values in logs.
	LogRedactedValue = "[REDACTED]"
)
