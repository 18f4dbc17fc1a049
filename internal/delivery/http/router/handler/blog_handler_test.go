package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBlogHandler_ListPublished_ParsesPagination(t *testing.T) {
	blogUC := &mockBlogUsecase{}
	e := newTestEcho(&mockAuthUsecase{}, blogUC, &mockProfileUsecase{})

	expected := []*entity.Blog{newTestBlogEntity(uuid.New(), true)}
	blogUC.On("ListPublished", mock.Anything, &usecase.ListBlogsInput{Skip: 10, Limit: 5}).
		Return(expected, nil)

	req := httptest.NewRequest(http.MethodGet, "/blogs?skip=10&limit=5", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), expected[0].Title)
	blogUC.AssertExpectations(t)
}

func TestBlogHandler_TrailingSlashRoutes(t *testing.T) {
	authUC := &mockAuthUsecase{}
	blogUC := &mockBlogUsecase{}
	e := newTestEcho(authUC, blogUC, &mockProfileUsecase{})

	blogUC.On("ListPublished", mock.Anything, &usecase.ListBlogsInput{}).
		Return([]*entity.Blog{}, nil)

	// The documented paths carry a trailing slash; both forms must match.
	req := httptest.NewRequest(http.MethodGet, "/blogs/", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	profile := newTestProfile()
	authUC.On("Resolve", mock.Anything, "good-token").Return(profile, nil)
	blogUC.On("CreateBlog", mock.Anything, profile.ID, mock.AnythingOfType("*usecase.CreateBlogInput")).
		Return(newTestBlogEntity(profile.ID, true), nil)

	body := `{"title":"A title long enough","body":"A body long enough to pass"}`
	req = httptest.NewRequest(http.MethodPost, "/blogs/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer good-token")
	rec = httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestBlogHandler_Get_UnknownID(t *testing.T) {
	blogUC := &mockBlogUsecase{}
	e := newTestEcho(&mockAuthUsecase{}, blogUC, &mockProfileUsecase{})

	id := uuid.New()
	blogUC.On("GetBlog", mock.Anything, id).
		Return(nil, domainerrors.ErrBlogNotFound.WrapMessage("blog does not exist"))

	req := httptest.NewRequest(http.MethodGet, "/blogs/"+id.String(), nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "BLOG_NOT_FOUND")
}

func TestBlogHandler_Get_MalformedID(t *testing.T) {
	blogUC := &mockBlogUsecase{}
	e := newTestEcho(&mockAuthUsecase{}, blogUC, &mockProfileUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/blogs/not-a-uuid", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	blogUC.AssertNotCalled(t, "GetBlog", mock.Anything, mock.Anything)
}

func TestBlogHandler_Create_RequiresToken(t *testing.T) {
	blogUC := &mockBlogUsecase{}
	e := newTestEcho(&mockAuthUsecase{}, blogUC, &mockProfileUsecase{})

	body := `{"title":"A title long enough","body":"A body long enough to pass"}`
	req := httptest.NewRequest(http.MethodPost, "/blogs", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
	blogUC.AssertNotCalled(t, "CreateBlog", mock.Anything, mock.Anything, mock.Anything)
}

func TestBlogHandler_Create_DefaultsToPublished(t *testing.T) {
	authUC := &mockAuthUsecase{}
	blogUC := &mockBlogUsecase{}
	e := newTestEcho(authUC, blogUC, &mockProfileUsecase{})

	profile := newTestProfile()
	authUC.On("Resolve", mock.Anything, "good-token").Return(profile, nil)

	created := newTestBlogEntity(profile.ID, true)
	blogUC.On("CreateBlog", mock.Anything, profile.ID, &usecase.CreateBlogInput{
		Title:     "A title long enough",
		Body:      "A body long enough to pass",
		Published: true,
	}).Return(created, nil)

	body := `{"title":"A title long enough","body":"A body long enough to pass"}`
	req := httptest.NewRequest(http.MethodPost, "/blogs", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), profile.ID.String())
	blogUC.AssertExpectations(t)
}

func TestBlogHandler_Create_ShortTitle(t *testing.T) {
	authUC := &mockAuthUsecase{}
	blogUC := &mockBlogUsecase{}
	e := newTestEcho(authUC, blogUC, &mockProfileUsecase{})

	profile := newTestProfile()
	authUC.On("Resolve", mock.Anything, "good-token").Return(profile, nil)

	body := `{"title":"abc","body":"A body long enough to pass"}`
	req := httptest.NewRequest(http.MethodPost, "/blogs", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	blogUC.AssertNotCalled(t, "CreateBlog", mock.Anything, mock.Anything, mock.Anything)
}

func TestBlogHandler_Update_NotAuthor(t *testing.T) {
	authUC := &mockAuthUsecase{}
	blogUC := &mockBlogUsecase{}
	e := newTestEcho(authUC, blogUC, &mockProfileUsecase{})

	profile := newTestProfile()
	authUC.On("Resolve", mock.Anything, "good-token").Return(profile, nil)

	blogID := uuid.New()
	blogUC.On("UpdateBlog", mock.Anything, blogID, profile.ID, mock.AnythingOfType("*usecase.UpdateBlogInput")).
		Return(nil, domainerrors.ErrForbidden.WrapMessage("requester does not own the blog"))

	body := `{"title":"An updated title"}`
	req := httptest.NewRequest(http.MethodPatch, "/blogs/"+blogID.String(), strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")
}

func TestBlogHandler_Delete_Success(t *testing.T) {
	authUC := &mockAuthUsecase{}
	blogUC := &mockBlogUsecase{}
	e := newTestEcho(authUC, blogUC, &mockProfileUsecase{})

	profile := newTestProfile()
	authUC.On("Resolve", mock.Anything, "good-token").Return(profile, nil)

	blogID := uuid.New()
	blogUC.On("DeleteBlog", mock.Anything, blogID, profile.ID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/blogs/"+blogID.String(), nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestBlogHandler_ListOwn(t *testing.T) {
	authUC := &mockAuthUsecase{}
	blogUC := &mockBlogUsecase{}
	e := newTestEcho(authUC, blogUC, &mockProfileUsecase{})

	profile := newTestProfile()
	authUC.On("Resolve", mock.Anything, "good-token").Return(profile, nil)

	own := []*entity.Blog{
		newTestBlogEntity(profile.ID, true),
		newTestBlogEntity(profile.ID, false),
	}
	blogUC.On("ListOwn", mock.Anything, profile.ID).Return(own, nil)

	req := httptest.NewRequest(http.MethodGet, "/blogs/me", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"published":false`)
}
