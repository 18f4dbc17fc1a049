// Package repository defines the persistence contracts the domain
// depends on. Concrete implementations live under internal/infra.
package repository

import (
	"context"

	"quill/internal/domain/entity"
	"quill/internal/errors"

	"github.com/google/uuid"
)

// ErrProfileNotFound is the sentinel returned when no profile row
// matches the lookup. Callers translate it to a domain error.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository provides access to the profiles collection.
type ProfileRepository interface {
	// FindByID retrieves a profile by its identity id.
	// Returns ErrProfileNotFound if no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindByEmail retrieves a profile by email.
	// Returns ErrProfileNotFound if no row matches.
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)

	// Create inserts a profile row keyed by the provider-assigned
	// identity id. The insert is idempotent: a row that already exists
	// for the same id is treated as success, making registration
	// retry-safe. Uses the elevated client because the newly created
	// identity has no session yet.
	Create(ctx context.Context, profile *entity.Profile) error

	// UpdateUsername changes the username of an existing profile and
	// returns the updated row.
	UpdateUsername(ctx context.Context, id uuid.UUID, username string) (*entity.Profile, error)
}
