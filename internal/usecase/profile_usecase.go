package usecase

import (
	"context"

	"quill/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateUsernameInput defines the data for the username update path.
type UpdateUsernameInput struct {
	Username string
}

// ProfileUsecase defines the interface for profile read/update operations.
type ProfileUsecase interface {
	// GetProfile retrieves a public profile by identity id.
	GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// UpdateUsername changes the authenticated account's username.
	UpdateUsername(ctx context.Context, id uuid.UUID, input *UpdateUsernameInput) (*entity.Profile, error)
}
