// Package constants provides shared constant values used throughout the application.
//
// The general_const.go file defines general-purpose constants related to
// routing and request parameters. These constants ensure consistent API
// patterns and URL structure throughout the application.
package constants

// URL Parameters define path parameter names used in route definitions.
// These constants are used when defining routes with path parameters and
// when extracting those parameters from requests.
const (
	// ParamCategory is the URL parameter for catalog category names.
	ParamCategory = "category"

	// ParamRecipeID is the URL parameter for recipe identifiers.
	ParamRecipeID = "recipeID"

	// ParamReviewID is the URL parameter for review identifiers.
	ParamReviewID = "reviewID"

	// ParamPlanID is the URL parameter for meal plan identifiers.
	ParamPlanID = "planID"

	// ParamEntryID is the URL parameter for meal plan entry identifiers.
	ParamEntryID = "entryID"
)

// Query Parameters define common query string parameter names.
const (
	// QueryParamPage is the query parameter for pagination page number.
	QueryParamPage = "page"

	// QueryParamPageSize is the query parameter for pagination page size.
	QueryParamPageSize = "page_size"

	// QueryParamQuery is the query parameter for free-text search terms.
	QueryParamQuery = "q"
)

// Context Keys define the string values used for request context keys.
const (
	// UserIDContextKey is the context key name for the authenticated user ID.
	UserIDContextKey = "user_id"

	// UsernameContextKey is the context key name for the authenticated username.
	UsernameContextKey = "username"

	// RequestIDContextKey is the context key name for the request identifier.
	RequestIDContextKey = "request_id"
)
