// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims holds the identity extracted from a validated token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService validates access tokens issued by the external auth
// provider. This service never issues tokens itself.
type TokenService interface {
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
