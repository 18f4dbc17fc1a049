package impl

import (
	"context"
	"testing"
	"time"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// blogServiceFixtures holds all test dependencies for blog service tests.
type blogServiceFixtures struct {
	service  usecase.BlogUsecase
	blogRepo *mockBlogRepository
}

func createTestBlogService(t *testing.T) blogServiceFixtures {
	t.Helper()

	blogRepo := &mockBlogRepository{}
	service := NewBlogService(blogRepo, newDiscardLogger())

	return blogServiceFixtures{
		service:  service,
		blogRepo: blogRepo,
	}
}

func newTestBlog(authorID uuid.UUID, published bool) *entity.Blog {
	now := time.Now().UTC()

	return &entity.Blog{
		ID:        uuid.New(),
		Title:     "A title long enough",
		Body:      "A body long enough to pass",
		Published: published,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestBlogService_ListPublished_DefaultsPagination(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()
	expected := []*entity.Blog{newTestBlog(uuid.New(), true)}

	fx.blogRepo.On("List", ctx, repository.ListBlogsQuery{
		Skip:          0,
		Limit:         20,
		PublishedOnly: true,
	}).Return(expected, nil)

	blogs, err := fx.service.ListPublished(ctx, &usecase.ListBlogsInput{})

	require.NoError(t, err)
	assert.Equal(t, expected, blogs)
	fx.blogRepo.AssertExpectations(t)
}

func TestBlogService_ListPublished_ClampsNegativeSkip(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()

	fx.blogRepo.On("List", ctx, repository.ListBlogsQuery{
		Skip:          0,
		Limit:         5,
		PublishedOnly: true,
	}).Return([]*entity.Blog{}, nil)

	blogs, err := fx.service.ListPublished(ctx, &usecase.ListBlogsInput{Skip: -3, Limit: 5})

	require.NoError(t, err)
	assert.Empty(t, blogs)
	fx.blogRepo.AssertExpectations(t)
}

func TestBlogService_ListOwn(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()
	authorID := uuid.New()
	expected := []*entity.Blog{
		newTestBlog(authorID, true),
		newTestBlog(authorID, false),
	}

	fx.blogRepo.On("ListByAuthor", ctx, authorID).Return(expected, nil)

	blogs, err := fx.service.ListOwn(ctx, authorID)

	require.NoError(t, err)
	assert.Equal(t, expected, blogs)
}

func TestBlogService_GetBlog_NotFound(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.blogRepo.On("FindByID", ctx, id).Return(nil, repository.ErrBlogNotFound)

	blog, err := fx.service.GetBlog(ctx, id)

	require.Error(t, err)
	assert.Nil(t, blog)
	assert.True(t, errors.Is(err, domainerrors.ErrBlogNotFound))
}

func TestBlogService_CreateBlog_AuthorFromToken(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()
	authorID := uuid.New()
	input := &usecase.CreateBlogInput{
		Title:     "A title long enough",
		Body:      "A body long enough to pass",
		Published: true,
	}

	fx.blogRepo.On("Create", ctx, mock.MatchedBy(func(b *entity.Blog) bool {
		return b.AuthorID == authorID && b.Title == input.Title && b.Published
	})).Return(nil)

	blog, err := fx.service.CreateBlog(ctx, authorID, input)

	require.NoError(t, err)
	assert.Equal(t, authorID, blog.AuthorID)
	fx.blogRepo.AssertExpectations(t)
}

func TestBlogService_UpdateBlog_Success(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()
	authorID := uuid.New()
	existing := newTestBlog(authorID, true)
	newTitle := "An updated title"
	unpublish := false

	updated := *existing
	updated.Title = newTitle
	updated.Published = unpublish

	fx.blogRepo.On("FindByID", ctx, existing.ID).Return(existing, nil)
	fx.blogRepo.On("Update", ctx, existing.ID, map[string]any{
		"title":     newTitle,
		"published": unpublish,
	}).Return(&updated, nil)

	blog, err := fx.service.UpdateBlog(ctx, existing.ID, authorID, &usecase.UpdateBlogInput{
		Title:     &newTitle,
		Published: &unpublish,
	})

	require.NoError(t, err)
	assert.Equal(t, newTitle, blog.Title)
	assert.False(t, blog.Published)
	fx.blogRepo.AssertExpectations(t)
}

func TestBlogService_UpdateBlog_NotAuthor(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()
	existing := newTestBlog(uuid.New(), true)
	stranger := uuid.New()
	newTitle := "An updated title"

	fx.blogRepo.On("FindByID", ctx, existing.ID).Return(existing, nil)

	blog, err := fx.service.UpdateBlog(ctx, existing.ID, stranger, &usecase.UpdateBlogInput{
		Title: &newTitle,
	})

	require.Error(t, err)
	assert.Nil(t, blog)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	fx.blogRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestBlogService_UpdateBlog_MissingBeforeOwnership(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()
	id := uuid.New()
	newTitle := "An updated title"

	fx.blogRepo.On("FindByID", ctx, id).Return(nil, repository.ErrBlogNotFound)

	// A missing id reports not found even for a requester who would
	// fail the ownership check.
	blog, err := fx.service.UpdateBlog(ctx, id, uuid.New(), &usecase.UpdateBlogInput{
		Title: &newTitle,
	})

	require.Error(t, err)
	assert.Nil(t, blog)
	assert.True(t, errors.Is(err, domainerrors.ErrBlogNotFound))
}

func TestBlogService_DeleteBlog_Success(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()
	authorID := uuid.New()
	existing := newTestBlog(authorID, false)

	fx.blogRepo.On("FindByID", ctx, existing.ID).Return(existing, nil)
	fx.blogRepo.On("Delete", ctx, existing.ID).Return(nil)

	err := fx.service.DeleteBlog(ctx, existing.ID, authorID)

	require.NoError(t, err)
	fx.blogRepo.AssertExpectations(t)
}

func TestBlogService_DeleteBlog_NotAuthor(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()
	existing := newTestBlog(uuid.New(), true)

	fx.blogRepo.On("FindByID", ctx, existing.ID).Return(existing, nil)

	err := fx.service.DeleteBlog(ctx, existing.ID, uuid.New())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	fx.blogRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
