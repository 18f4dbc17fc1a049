// Package service defines the contracts for domain services whose
// concrete implementations live under internal/infra.
package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by an access token.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService issues and verifies the stateless bearer tokens that
// carry session identity. Verification is by signature and expiry
// only; tokens are never persisted or revoked server-side.
type TokenService interface {
	// GenerateToken creates a signed access token for the given
	// subject, expiring after the configured duration.
	GenerateToken(subject uuid.UUID) (string, error)

	// ValidateToken checks signature and expiry and returns the
	// decoded claims. Any failure mode (malformed encoding, signature
	// mismatch, expired, missing subject) yields an error; callers
	// must not distinguish between them.
	ValidateToken(tokenString string) (*Claims, error)
}
