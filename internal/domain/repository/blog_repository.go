package repository

import (
	"context"

	"quill/internal/domain/entity"
	"quill/internal/errors"

	"github.com/google/uuid"
)

// ErrBlogNotFound is the sentinel returned when no blog row matches the lookup.
var ErrBlogNotFound = errors.New("blog not found")

// ListBlogsQuery narrows a blog listing.
type ListBlogsQuery struct {
	Skip          int
	Limit         int
	PublishedOnly bool
}

// BlogRepository provides access to the blogs collection.
// Listings are always ordered newest first.
type BlogRepository interface {
	// FindByID retrieves a single blog. Returns ErrBlogNotFound if absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error)

	// List returns a page of blogs matching the query.
	List(ctx context.Context, query ListBlogsQuery) ([]*entity.Blog, error)

	// ListByAuthor returns every blog by an author, drafts included.
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Blog, error)

	// Create inserts a new blog and fills in the generated id and timestamps.
	Create(ctx context.Context, blog *entity.Blog) error

	// Update applies a partial update (column -> value) to a blog and
	// returns the updated row. An empty changes map returns the row
	// unchanged. Returns ErrBlogNotFound if absent.
	Update(ctx context.Context, id uuid.UUID, changes map[string]any) (*entity.Blog, error)

	// Delete removes a blog. Returns ErrBlogNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error
}
