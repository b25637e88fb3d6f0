package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/plateful/Plateful_Backend/internal/constants"
	"github.com/plateful/Plateful_Backend/internal/utils"
)

// ContextKey is a custom type for context keys to prevent collisions.
// Using a custom type instead of string or int provides type safety for context values.
type ContextKey string

// Context keys for storing authenticated user information and request metadata.
const (
	// UserIDContextKey is the context key for storing the authenticated user ID.
	UserIDContextKey ContextKey = constants.UserIDContextKey

	// UsernameContextKey is the context key for storing the authenticated username.
	UsernameContextKey ContextKey = constants.UsernameContextKey

	// RequestIDContextKey is the context key for storing the unique request ID.
	RequestIDContextKey ContextKey = constants.RequestIDContextKey
)

// AuthProvider defines methods for different authentication mechanisms.
// This interface allows for pluggable authentication strategies.
type AuthProvider interface {
	// Authenticate checks the request and returns user information if valid.
	//
	// Returns:
	//   - userID: The authenticated user's ID
	//   - username: The authenticated user's username
	//   - error: An error if authentication fails, nil if successful
	Authenticate(r *http.Request) (int64, string, error)
}

// JWTAuthProvider implements JWT-based authentication.
// It extracts and validates bearer tokens from requests to authenticate users.
type JWTAuthProvider struct {
	jwtService JWTValidator
}

// NewJWTAuthProvider creates a new JWTAuthProvider with the specified JWT validator.
func NewJWTAuthProvider(jwtService JWTValidator) *JWTAuthProvider {
	return &JWTAuthProvider{
		jwtService: jwtService,
	}
}

// Authenticate implements the AuthProvider interface for JWT authentication.
// It extracts the bearer token from the Authorization header, validates it,
// and returns the authenticated user's information.
func (p *JWTAuthProvider) Authenticate(r *http.Request) (int64, string, error) {
	authHeader := r.Header.Get(constants.HeaderAuthorization)
	if authHeader == "" {
		return 0, "", utils.ErrUnauthorized
	}

	// Check if the header has the correct format (Bearer token)
	if !strings.HasPrefix(authHeader, constants.BearerTokenPrefix) {
		return 0, "", utils.ErrUnauthorized
	}

	// Extract the token by removing the "Bearer " prefix
	token := strings.TrimPrefix(authHeader, constants.BearerTokenPrefix)

	// Validate the token and extract claims
	claims, err := p.jwtService.ValidateToken(token)
	if err != nil {
		return 0, "", err
	}

	return claims.UserID, claims.Username, nil
}

// AuthMiddleware wraps an HTTP handler with authentication.
// It tries each provided authentication provider and only allows the request
// to proceed if at least one authentication method succeeds.
func AuthMiddleware(next http.Handler, providers ...AuthProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Generate a request ID if not already present for request tracking
		requestID := r.Header.Get(constants.HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
			r.Header.Set(constants.HeaderRequestID, requestID)
		}

		// Add request ID to the context
		ctx := context.WithValue(r.Context(), RequestIDContextKey, requestID)

		// Try each authentication provider until one succeeds
		var lastErr error
		for _, provider := range providers {
			userID, username, err := provider.Authenticate(r)
			if err == nil {
				// Add user information to the context for use by handlers
				ctx = context.WithValue(ctx, UserIDContextKey, userID)
				ctx = context.WithValue(ctx, UsernameContextKey, username)

				log.Debug().
					Int64("user_id", userID).
					Str("request_id", requestID).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Msg("User authenticated")

				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
			lastErr = err
		}

		// If we get here, all authentication methods failed
		log.Info().
			Err(lastErr).
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Authentication failed")

		// Handle different authentication errors with appropriate responses
		var appErr *utils.AppError
		if errors.As(lastErr, &appErr) {
			utils.ErrorFromAppError(w, appErr)
		} else if errors.Is(lastErr, utils.ErrExpiredToken) {
			utils.Error(w, constants.StatusUnauthorized, constants.CodeTokenExpired, constants.MsgTokenExpired, nil)
		} else {
			utils.Unauthorized(w, constants.MsgAuthRequired)
		}
	})
}

// RequireAuth is a middleware that requires authentication.
// It returns a middleware function that can be used in HTTP routers.
func RequireAuth(providers ...AuthProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return AuthMiddleware(next, providers...)
	}
}

// OptionalAuth is a middleware that attempts authentication but continues even if it fails.
// Recipe search uses this so anonymous requests still work, just without
// preference weighting.
func OptionalAuth(providers ...AuthProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Generate a request ID if not already present
			requestID := r.Header.Get(constants.HeaderRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
				r.Header.Set(constants.HeaderRequestID, requestID)
			}

			// Add request ID to the context
			ctx := context.WithValue(r.Context(), RequestIDContextKey, requestID)

			// Try each authentication provider, but don't require success
			for _, provider := range providers {
				userID, username, err := provider.Authenticate(r)
				if err == nil {
					ctx = context.WithValue(ctx, UserIDContextKey, userID)
					ctx = context.WithValue(ctx, UsernameContextKey, username)
					break
				}
			}

			// Call the next handler with the updated context (authenticated or not)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID extracts the user ID from the request context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (int64, bool) {
	userID, ok := r.Context().Value(UserIDContextKey).(int64)
	return userID, ok
}

// GetUsername extracts the username from the request context.
// It returns the username and a boolean indicating if it was found.
func GetUsername(r *http.Request) (string, bool) {
	username, ok := r.Context().Value(UsernameContextKey).(string)
	return username, ok
}

// GetRequestID extracts the request ID from the request context.
// It returns the request ID and a boolean indicating if it was found.
func GetRequestID(r *http.Request) (string, bool) {
	requestID, ok := r.Context().Value(RequestIDContextKey).(string)
	return requestID, ok
}

// IsAuthenticated checks if the request is authenticated.
// It returns true if a user ID is present in the context.
func IsAuthenticated(r *http.Request) bool {
	_, ok := GetUserID(r)
	return ok
}
