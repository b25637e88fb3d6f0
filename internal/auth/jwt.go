// Package auth provides token validation and request authentication for the
// Plateful API. Token issuance lives in the external identity service; this
// package only validates bearer tokens and exposes the authenticated user to
// handlers through the request context.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v4"

	"github.com/plateful/Plateful_Backend/internal/config"
	"github.com/plateful/Plateful_Backend/internal/utils"
)

// JWT errors
var (
	ErrInvalidSigningMethod = errors.New("invalid signing method")
	ErrInvalidTokenClaims   = errors.New("invalid token claims")
)

// CustomClaims represents the claims in a JWT token
type CustomClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTValidator validates bearer tokens and returns their claims.
type JWTValidator interface {
	ValidateToken(tokenString string) (*CustomClaims, error)
}

// JWTService validates JWT tokens issued by the identity service.
type JWTService struct {
	config *config.JWTSettings
}

// NewJWTService creates a new JWTService instance
func NewJWTService(config *config.JWTSettings) *JWTService {
	return &JWTService{
		config: config,
	}
}

// ValidateToken validates a JWT token and returns its claims if valid
func (s *JWTService) ValidateToken(tokenString string) (*CustomClaims, error) {
	// Parse the token
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSigningMethod
		}
		return []byte(s.config.Secret), nil
	})

	// Handle parsing errors
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, utils.NewExpiredTokenError()
		}
		return nil, utils.NewInvalidTokenError()
	}

	// Check if the token is valid
	if !token.Valid {
		return nil, utils.NewInvalidTokenError()
	}

	// Extract the claims
	claims, ok := token.Claims.(*CustomClaims)
	if !ok {
		return nil, utils.NewInvalidTokenError()
	}

	// Verify the issuer when one is configured
	if s.config.Issuer != "" && claims.Issuer != s.config.Issuer {
		return nil, utils.NewInvalidTokenError()
	}

	// A token without a subject user is useless for authorization
	if claims.UserID <= 0 {
		return nil, utils.NewInvalidTokenError()
	}

	return claims, nil
}
