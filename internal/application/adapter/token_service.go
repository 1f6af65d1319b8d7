// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// TokenClaims represents the claims contained in an access token.
type TokenClaims struct {
	UserID    int64
	Username  string
	ExpiresAt time.Time
}

// TokenService defines the interface for JWT token operations.
type TokenService interface {
	// GenerateAccessToken issues a signed access token for the user.
	GenerateAccessToken(ctx context.Context, userID int64, username string) (string, time.Time, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
