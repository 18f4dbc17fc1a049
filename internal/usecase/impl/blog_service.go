package impl

import (
	"context"
	"log/slog"

	deliverycontext "quill/internal/delivery/context"
	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultListLimit = 20

// blogService implements the BlogUsecase interface.
type blogService struct {
	blogRepo repository.BlogRepository
	logger   *slog.Logger
}

// NewBlogService is the constructor for blogService.
func NewBlogService(blogRepo repository.BlogRepository, logger *slog.Logger) usecase.BlogUsecase {
	return &blogService{
		blogRepo: blogRepo,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *blogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPublished returns a page of published posts, newest first.
func (srv *blogService) ListPublished(ctx context.Context, input *usecase.ListBlogsInput) ([]*entity.Blog, error) {
	skip := input.Skip
	if skip < 0 {
		skip = 0
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	blogs, err := srv.blogRepo.List(ctx, repository.ListBlogsQuery{
		Skip:          skip,
		Limit:         limit,
		PublishedOnly: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list published blogs")
	}

	return blogs, nil
}

// ListOwn returns every post by the author, drafts included.
func (srv *blogService) ListOwn(ctx context.Context, authorID uuid.UUID) ([]*entity.Blog, error) {
	blogs, err := srv.blogRepo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own blogs")
	}

	return blogs, nil
}

// GetBlog retrieves a single post by id.
func (srv *blogService) GetBlog(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	blog, err := srv.blogRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, domainerrors.ErrBlogNotFound.WrapMessage("blog does not exist")
		}

		return nil, errors.Wrap(err, "failed to find blog")
	}

	return blog, nil
}

// CreateBlog inserts a post authored by the resolved identity. The
// author id comes from the token subject, never the payload.
func (srv *blogService) CreateBlog(ctx context.Context, authorID uuid.UUID, input *usecase.CreateBlogInput) (*entity.Blog, error) {
	blog := &entity.Blog{
		Title:     input.Title,
		Body:      input.Body,
		Published: input.Published,
		AuthorID:  authorID,
	}

	if err := srv.blogRepo.Create(ctx, blog); err != nil {
		srv.log(ctx).Error("Failed to create blog", slog.Any("author_id", authorID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create blog")
	}

	srv.log(ctx).Debug("Blog created", slog.Any("blog_id", blog.ID), slog.Any("author_id", authorID))

	return blog, nil
}

// UpdateBlog applies a partial update behind the authorship gate.
func (srv *blogService) UpdateBlog(ctx context.Context, id, requesterID uuid.UUID, input *usecase.UpdateBlogInput) (*entity.Blog, error) {
	if err := srv.authorize(ctx, id, requesterID); err != nil {
		return nil, err
	}

	changes := make(map[string]any)
	if input.Title != nil {
		changes["title"] = *input.Title
	}
	if input.Body != nil {
		changes["body"] = *input.Body
	}
	if input.Published != nil {
		changes["published"] = *input.Published
	}

	blog, err := srv.blogRepo.Update(ctx, id, changes)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, domainerrors.ErrBlogNotFound.WrapMessage("blog vanished during update")
		}

		return nil, errors.Wrap(err, "failed to update blog")
	}

	return blog, nil
}

// DeleteBlog removes a post behind the authorship gate.
func (srv *blogService) DeleteBlog(ctx context.Context, id, requesterID uuid.UUID) error {
	if err := srv.authorize(ctx, id, requesterID); err != nil {
		return err
	}

	if err := srv.blogRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return domainerrors.ErrBlogNotFound.WrapMessage("blog vanished during delete")
		}

		return errors.Wrap(err, "failed to delete blog")
	}

	srv.log(ctx).Info("Blog deleted", slog.Any("blog_id", id), slog.Any("author_id", requesterID))

	return nil
}

// authorize enforces the mutation gate: the post must exist (checked
// first, so a missing id is 404 rather than 403) and the requester
// must be its author.
func (srv *blogService) authorize(ctx context.Context, id, requesterID uuid.UUID) error {
	existing, err := srv.blogRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return domainerrors.ErrBlogNotFound.WrapMessage("blog does not exist")
		}

		return errors.Wrap(err, "failed to find blog for authorization")
	}

	if existing.AuthorID != requesterID {
		srv.log(ctx).Warn("Mutation denied: requester is not the author",
			slog.Any("blog_id", id), slog.Any("requester_id", requesterID))

		return domainerrors.ErrForbidden.WrapMessage("requester does not own the blog")
	}

	return nil
}
