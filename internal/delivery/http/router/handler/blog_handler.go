package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"quill/internal/delivery/http/middleware"
	"quill/internal/delivery/http/response"
	"quill/internal/domain/entity"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CreateBlogRequest is the payload for a new post. There is no author
// field; authorship always comes from the bearer token.
type CreateBlogRequest struct {
	Title     string `json:"title" validate:"required,min=5,max=200"`
	Body      string `json:"body" validate:"required,min=10"`
	Published *bool  `json:"published"`
}

// UpdateBlogRequest is a partial update; absent fields stay unchanged.
type UpdateBlogRequest struct {
	Title     *string `json:"title" validate:"omitempty,min=5,max=200"`
	Body      *string `json:"body" validate:"omitempty,min=10"`
	Published *bool   `json:"published"`
}

// BlogResponse is the wire view of a post.
type BlogResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Published bool      `json:"published"`
	AuthorID  uuid.UUID `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toBlogResponse(blog *entity.Blog) *BlogResponse {
	return &BlogResponse{
		ID:        blog.ID,
		Title:     blog.Title,
		Body:      blog.Body,
		Published: blog.Published,
		AuthorID:  blog.AuthorID,
		CreatedAt: blog.CreatedAt,
		UpdatedAt: blog.UpdatedAt,
	}
}

func toBlogResponses(blogs []*entity.Blog) []*BlogResponse {
	out := make([]*BlogResponse, 0, len(blogs))
	for _, blog := range blogs {
		out = append(out, toBlogResponse(blog))
	}

	return out
}

// BlogHandler holds dependencies for blog-related handlers.
type BlogHandler struct {
	uc     usecase.BlogUsecase
	logger *slog.Logger
}

// NewBlogHandler is the constructor for BlogHandler, injected by Fx.
func NewBlogHandler(uc usecase.BlogUsecase, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListPublished handles the public listing of published posts.
func (h *BlogHandler) ListPublished(c echo.Context) error {
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	blogs, err := h.uc.ListPublished(c.Request().Context(), &usecase.ListBlogsInput{
		Skip:  skip,
		Limit: limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBlogResponses(blogs), "Blogs retrieved successfully")
}

// ListOwn handles listing the authenticated author's posts, drafts included.
func (h *BlogHandler) ListOwn(c echo.Context) error {
	profile, ok := middleware.ProfileFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Could not validate credentials")
	}

	blogs, err := h.uc.ListOwn(c.Request().Context(), profile.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBlogResponses(blogs), "Blogs retrieved successfully")
}

// Get handles the public single-post read.
func (h *BlogHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "BLOG_NOT_FOUND", "Blog not found")
	}

	blog, err := h.uc.GetBlog(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBlogResponse(blog), "Blog retrieved successfully")
}

// Create handles post creation for the authenticated author.
func (h *BlogHandler) Create(c echo.Context) error {
	profile, ok := middleware.ProfileFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Could not validate credentials")
	}

	var req CreateBlogRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid blog input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	// Posts are published unless the payload says otherwise.
	published := true
	if req.Published != nil {
		published = *req.Published
	}

	blog, err := h.uc.CreateBlog(c.Request().Context(), profile.ID, &usecase.CreateBlogInput{
		Title:     req.Title,
		Body:      req.Body,
		Published: published,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toBlogResponse(blog), "Blog created successfully")
}

// Update handles a partial update behind the authorship gate.
func (h *BlogHandler) Update(c echo.Context) error {
	profile, ok := middleware.ProfileFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Could not validate credentials")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "BLOG_NOT_FOUND", "Blog not found")
	}

	var req UpdateBlogRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid blog input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	blog, err := h.uc.UpdateBlog(c.Request().Context(), id, profile.ID, &usecase.UpdateBlogInput{
		Title:     req.Title,
		Body:      req.Body,
		Published: req.Published,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBlogResponse(blog), "Blog updated successfully")
}

// Delete handles post deletion behind the authorship gate.
func (h *BlogHandler) Delete(c echo.Context) error {
	profile, ok := middleware.ProfileFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Could not validate credentials")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "BLOG_NOT_FOUND", "Blog not found")
	}

	if err := h.uc.DeleteBlog(c.Request().Context(), id, profile.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
