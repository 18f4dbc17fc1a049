package usecase

import (
	"context"

	"quill/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateBlogInput defines the data for a new blog post. There is no
// author field; the author is always the resolved identity.
type CreateBlogInput struct {
	Title     string
	Body      string
	Published bool
}

// UpdateBlogInput defines a partial update; nil fields stay unchanged.
type UpdateBlogInput struct {
	Title     *string
	Body      *string
	Published *bool
}

// ListBlogsInput defines pagination for the public listing.
type ListBlogsInput struct {
	Skip  int
	Limit int
}

// BlogUsecase defines the interface for blog operations, including
// the authorship gate on mutations.
type BlogUsecase interface {
	// ListPublished returns a page of published posts, newest first.
	ListPublished(ctx context.Context, input *ListBlogsInput) ([]*entity.Blog, error)

	// ListOwn returns every post by the authenticated author, drafts included.
	ListOwn(ctx context.Context, authorID uuid.UUID) ([]*entity.Blog, error)

	// GetBlog retrieves a single post by id.
	GetBlog(ctx context.Context, id uuid.UUID) (*entity.Blog, error)

	// CreateBlog inserts a post authored by the resolved identity.
	CreateBlog(ctx context.Context, authorID uuid.UUID, input *CreateBlogInput) (*entity.Blog, error)

	// UpdateBlog applies a partial update. Fails with ErrBlogNotFound
	// when the id does not exist (checked before ownership) and
	// ErrForbidden when the requester is not the author.
	UpdateBlog(ctx context.Context, id, requesterID uuid.UUID, input *UpdateBlogInput) (*entity.Blog, error)

	// DeleteBlog removes a post under the same authorship gate as UpdateBlog.
	DeleteBlog(ctx context.Context, id, requesterID uuid.UUID) error
}
