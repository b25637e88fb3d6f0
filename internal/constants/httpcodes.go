// Package constants provides shared constant values used throughout the application.
//
// The httpcodes.go file defines HTTP-related constants such as status codes,
// response codes, headers, and content types. These constants ensure consistent
// HTTP communication patterns across the application and provide meaningful
// standardized responses to API clients.
package constants

// HTTP Status Codes define the standard HTTP response status codes used in the application.
const (
	// StatusOK indicates that the request has succeeded.
	StatusOK = 200

	// StatusCreated indicates that the request has succeeded and a new resource has been created.
	StatusCreated = 201

	// StatusNoContent indicates that the request has succeeded but there is no content to send.
	StatusNoContent = 204

	// StatusBadRequest indicates that the server cannot process the request due to client error.
	StatusBadRequest = 400

	// StatusUnauthorized indicates that the request lacks valid authentication credentials.
	StatusUnauthorized = 401

	// StatusForbidden indicates that the server understood the request but refuses to authorize it.
	StatusForbidden = 403

	// StatusNotFound indicates that the server cannot find the requested resource.
	StatusNotFound = 404

	// StatusMethodNotAllowed indicates that the request method is not supported for the requested resource.
	StatusMethodNotAllowed = 405

	// StatusConflict indicates that the request conflicts with the current state of the server.
	StatusConflict = 409

	// StatusInternalServerError indicates that the server encountered an unexpected condition.
	StatusInternalServerError = 500
)

// HTTP Response Code Types define application-specific response codes.
// These codes provide more detailed information beyond HTTP status codes.
const (
	// ResponseSuccess indicates that the request was processed successfully.
	ResponseSuccess = true

	// ResponseFailure indicates that the request processing failed.
	ResponseFailure = false

	// CodeBadRequest indicates a malformed or invalid request.
	CodeBadRequest = "bad_request"

	// CodeUnauthorized indicates missing or invalid authentication.
	CodeUnauthorized = "unauthorized"

	// CodeForbidden indicates the user lacks permission for the requested action.
	CodeForbidden = "forbidden"

	// CodeNotFound indicates the requested resource does not exist.
	CodeNotFound = "not_found"

	// CodeMethodNotAllowed indicates the HTTP method is not allowed for the endpoint.
	CodeMethodNotAllowed = "method_not_allowed"

	// CodeConflict indicates a resource conflict, such as a duplicate entry.
	CodeConflict = "conflict"

	// CodeInternalError indicates an unexpected server error.
	CodeInternalError = "internal_error"

	// CodeValidationError indicates request validation failed.
	CodeValidationError = "validation_error"

	// CodeTokenExpired indicates an authentication token has expired.
	CodeTokenExpired = "token_expired"

	// CodeTokenInvalid indicates an authentication token is malformed or invalid.
	CodeTokenInvalid = "token_invalid"
)

// HTTP Headers define standard and custom header names used by the API.
const (
	// HeaderContentType is the standard content type header.
	HeaderContentType = "Content-Type"

	// HeaderContentLength is the standard content length header.
	HeaderContentLength = "Content-Length"

	// HeaderAuthorization is the standard authorization header.
	HeaderAuthorization = "Authorization"

	// HeaderRequestID carries the unique identifier assigned to each request.
	HeaderRequestID = "X-Request-ID"

	// HeaderCacheControl is the standard cache control header.
	HeaderCacheControl = "Cache-Control"

	// HeaderXContentTypeOptions controls MIME type sniffing behavior.
	HeaderXContentTypeOptions = "X-Content-Type-Options"

	// HeaderXFrameOptions controls whether the response may be framed.
	HeaderXFrameOptions = "X-Frame-Options"

	// HeaderXXSSProtection enables legacy browser XSS filtering.
	HeaderXXSSProtection = "X-XSS-Protection"

	// HeaderReferrerPolicy controls how much referrer information is sent.
	HeaderReferrerPolicy = "Referrer-Policy"

	// HeaderContentSecurityPolicy restricts the sources a response may load from.
	HeaderContentSecurityPolicy = "Content-Security-Policy"
)

// Security Header Values define the values set by the security headers middleware.
const (
	// ContentTypeOptionsNoSniff disables MIME type sniffing.
	ContentTypeOptionsNoSniff = "nosniff"

	// FrameOptionsDeny disallows framing of responses entirely.
	FrameOptionsDeny = "DENY"

	// XSSProtectionModeBlock enables XSS filtering in blocking mode.
	XSSProtectionModeBlock = "1; mode=block"

	// ReferrerPolicyStrictOrigin limits referrer information on cross-origin requests.
	ReferrerPolicyStrictOrigin = "strict-origin-when-cross-origin"

	// CSPDefaultSrc restricts content loading to the API's own origin.
	CSPDefaultSrc = "default-src 'self'"
)

// Content Types define the MIME types used in responses.
const (
	// ContentTypeJSON is the MIME type for JSON payloads.
	ContentTypeJSON = "application/json"
)

// Cache Control Values define standard cache directives.
const (
	// CacheControlNoStore disables caching of a response entirely.
	CacheControlNoStore = "no-store"
)
