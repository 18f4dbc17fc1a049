package handler_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"quill/internal/delivery/http/middleware"
	"quill/internal/delivery/http/router"
	"quill/internal/delivery/http/router/handler"
	"quill/internal/delivery/http/validator"
	"quill/internal/domain/entity"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestProfile() *entity.Profile {
	return &entity.Profile{
		ID:        uuid.New(),
		Username:  "writer",
		Email:     "writer@example.com",
		CreatedAt: time.Now().UTC(),
	}
}

func newTestBlogEntity(authorID uuid.UUID, published bool) *entity.Blog {
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

// newTestEcho builds an Echo instance wired like the real server:
// validator, unified error handler, trailing-slash rewrite and the
// production route table.
func newTestEcho(authUC usecase.AuthUsecase, blogUC usecase.BlogUsecase, profileUC usecase.ProfileUsecase) *echo.Echo {
	logger := newDiscardLogger()

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Pre(echomiddleware.RemoveTrailingSlash())

	router.NewRouter(router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(authUC, logger),
		BlogHandler:    handler.NewBlogHandler(blogUC, logger),
		UserHandler:    handler.NewUserHandler(profileUC, logger),
		AuthMiddleware: middleware.NewAuthMiddleware(authUC),
	}).RegisterRoutes(e)

	return e
}

type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.TokenOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.TokenOutput), args.Error(1)
}

func (m *mockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.TokenOutput), args.Error(1)
}

func (m *mockAuthUsecase) Resolve(ctx context.Context, tokenString string) (*entity.Profile, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Profile), args.Error(1)
}

type mockBlogUsecase struct {
	mock.Mock
}

func (m *mockBlogUsecase) ListPublished(ctx context.Context, input *usecase.ListBlogsInput) ([]*entity.Blog, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Blog), args.Error(1)
}

func (m *mockBlogUsecase) ListOwn(ctx context.Context, authorID uuid.UUID) ([]*entity.Blog, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Blog), args.Error(1)
}

func (m *mockBlogUsecase) GetBlog(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Blog), args.Error(1)
}

func (m *mockBlogUsecase) CreateBlog(ctx context.Context, authorID uuid.UUID, input *usecase.CreateBlogInput) (*entity.Blog, error) {
	args := m.Called(ctx, authorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Blog), args.Error(1)
}

func (m *mockBlogUsecase) UpdateBlog(ctx context.Context, id, requesterID uuid.UUID, input *usecase.UpdateBlogInput) (*entity.Blog, error) {
	args := m.Called(ctx, id, requesterID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Blog), args.Error(1)
}

func (m *mockBlogUsecase) DeleteBlog(ctx context.Context, id, requesterID uuid.UUID) error {
	args := m.Called(ctx, id, requesterID)

	return args.Error(0)
}

type mockProfileUsecase struct {
	mock.Mock
}

func (m *mockProfileUsecase) GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *mockProfileUsecase) UpdateUsername(ctx context.Context, id uuid.UUID, input *usecase.UpdateUsernameInput) (*entity.Profile, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Profile), args.Error(1)
}
