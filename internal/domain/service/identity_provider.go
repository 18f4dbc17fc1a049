package service

import "context"

// IdentityProvider is the external managed auth service that owns
// credential records. It hashes and stores passwords; this system
// never sees or stores a password hash. Identities are referenced by
// the stable opaque id the provider assigns.
type IdentityProvider interface {
	// CreateIdentity registers email+password with the provider and
	// returns the provider-assigned identity id. Provider rejections
	// (weak password, duplicate email) surface as domain errors.
	CreateIdentity(ctx context.Context, email, password string) (string, error)

	// VerifyPassword authenticates email+password with the provider
	// and returns the identity id. Wrong credentials surface as
	// ErrInvalidCredentials.
	VerifyPassword(ctx context.Context, email, password string) (string, error)
}
