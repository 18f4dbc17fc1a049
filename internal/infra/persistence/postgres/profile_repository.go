package postgres

import (
	"context"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements the domain ProfileRepository using GORM.
// Reads go through the restricted client; the insert performed during
// registration goes through the elevated client because the freshly
// created identity has no session the row-level policies could match.
type profileRepository struct {
	db    *RestrictedDB
	admin *ElevatedDB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *RestrictedDB, admin *ElevatedDB) repository.ProfileRepository {
	return &profileRepository{
		db:    db,
		admin: admin,
	}
}

// FindByID retrieves a single profile by its identity id.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by id")
	}

	return toProfileDomain(&profileM), nil
}

// FindByEmail retrieves a single profile by email.
func (repo *profileRepository) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&profileM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by email")
	}

	return toProfileDomain(&profileM), nil
}

// Create inserts the profile row keyed by the provider identity id.
// ON CONFLICT (id) DO NOTHING makes the insert idempotent: retrying a
// registration whose earlier attempt already wrote the row succeeds.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	result := repo.admin.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(profileM)

	if err := result.Error; err != nil {
		// A conflict on the email unique index is a different identity
		// holding the address, not a retry of this one.
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailTaken.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	if result.RowsAffected == 0 {
		// The row already existed from a previous attempt; load it so
		// the caller sees the persisted state.
		var existing model.ProfileModel
		if err := repo.admin.WithContext(ctx).Where("id = ?", profile.ID).First(&existing).Error; err != nil {
			return errors.Wrap(err, "failed to load existing profile after idempotent insert")
		}
		profile.Username = existing.Username
		profile.Email = existing.Email
		profile.CreatedAt = existing.CreatedAt

		return nil
	}

	profile.CreatedAt = profileM.CreatedAt

	return nil
}

// UpdateUsername changes the username of an existing profile.
func (repo *profileRepository) UpdateUsername(ctx context.Context, id uuid.UUID, username string) (*entity.Profile, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Update("username", username)

	if err := result.Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update username")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrProfileNotFound
	}

	return repo.FindByID(ctx, id)
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:        data.ID,
		Username:  data.Username,
		Email:     data.Email,
		CreatedAt: data.CreatedAt,
	}
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:       data.ID,
		Username: data.Username,
		Email:    data.Email,
	}
}
