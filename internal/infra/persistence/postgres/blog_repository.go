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
)

// blogRepository implements the domain BlogRepository using GORM.
// Every operation runs under the restricted client.
type blogRepository struct {
	db *RestrictedDB
}

// NewBlogRepository is the constructor for blogRepository.
func NewBlogRepository(db *RestrictedDB) repository.BlogRepository {
	return &blogRepository{db: db}
}

// FindByID retrieves a single blog by id.
func (repo *blogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	var blogM model.BlogModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&blogM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to find blog by id")
	}

	return toBlogDomain(&blogM), nil
}

// List returns a page of blogs, newest first.
func (repo *blogRepository) List(ctx context.Context, query repository.ListBlogsQuery) ([]*entity.Blog, error) {
	tx := repo.db.WithContext(ctx).Model(&model.BlogModel{})
	if query.PublishedOnly {
		tx = tx.Where("published = ?", true)
	}

	var blogMs []*model.BlogModel
	err := tx.
		Order("created_at DESC").
		Offset(query.Skip).
		Limit(query.Limit).
		Find(&blogMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blogs")
	}

	return toBlogDomainSlice(blogMs), nil
}

// ListByAuthor returns every blog by the author, drafts included, newest first.
func (repo *blogRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Blog, error) {
	var blogMs []*model.BlogModel
	err := repo.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&blogMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blogs by author")
	}

	return toBlogDomainSlice(blogMs), nil
}

// Create inserts a new blog and fills in the generated id and timestamps.
func (repo *blogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	blogM := fromBlogDomain(blog)

	if err := repo.db.WithContext(ctx).Create(blogM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "author does not reference an existing profile")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required blog information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create blog")
	}

	blog.ID = blogM.ID
	blog.CreatedAt = blogM.CreatedAt
	blog.UpdatedAt = blogM.UpdatedAt

	return nil
}

// Update applies a partial column update and returns the updated row.
func (repo *blogRepository) Update(ctx context.Context, id uuid.UUID, changes map[string]any) (*entity.Blog, error) {
	if len(changes) == 0 {
		// Nothing was sent; return the existing record unchanged.
		return repo.FindByID(ctx, id)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.BlogModel{}).
		Where("id = ?", id).
		Updates(changes)

	if err := result.Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update blog")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrBlogNotFound
	}

	return repo.FindByID(ctx, id)
}

// Delete removes a blog row.
func (repo *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BlogModel{})

	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete blog")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBlogNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBlogDomain converts a GORM BlogModel to a domain Blog entity.
func toBlogDomain(data *model.BlogModel) *entity.Blog {
	if data == nil {
		return nil
	}

	return &entity.Blog{
		ID:        data.ID,
		Title:     data.Title,
		Body:      data.Body,
		Published: data.Published,
		AuthorID:  data.AuthorID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toBlogDomainSlice(data []*model.BlogModel) []*entity.Blog {
	blogs := make([]*entity.Blog, 0, len(data))
	for _, blogM := range data {
		blogs = append(blogs, toBlogDomain(blogM))
	}

	return blogs
}

// fromBlogDomain converts a domain Blog entity to a GORM BlogModel.
func fromBlogDomain(data *entity.Blog) *model.BlogModel {
	if data == nil {
		return nil
	}

	return &model.BlogModel{
		ID:        data.ID,
		Title:     data.Title,
		Body:      data.Body,
		Published: data.Published,
		AuthorID:  data.AuthorID,
	}
}
