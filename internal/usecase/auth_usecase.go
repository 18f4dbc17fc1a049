// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"quill/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// TokenOutput returns the issued bearer token.
type TokenOutput struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthUsecase defines the interface for the registration/login flow
// and per-request identity resolution. This is the contract the
// delivery layer depends on.
type AuthUsecase interface {
	// Register creates a credential identity with the external auth
	// provider, writes the local profile row keyed by the provider
	// identity id, and issues a token for the new identity.
	Register(ctx context.Context, input *RegisterInput) (*TokenOutput, error)

	// Login verifies credentials with the external auth provider and
	// issues a token. No local profile read happens here; the profile
	// is resolved lazily by later requests.
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)

	// Resolve maps a bearer token to the persisted profile it
	// represents. An invalid token and a valid token whose subject has
	// no profile fail identically with ErrUnauthenticated.
	Resolve(ctx context.Context, tokenString string) (*entity.Profile, error)
}
