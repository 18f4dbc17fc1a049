package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "quill/internal/domain/errors"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserHandler_Get_Success(t *testing.T) {
	profileUC := &mockProfileUsecase{}
	e := newTestEcho(&mockAuthUsecase{}, &mockBlogUsecase{}, profileUC)

	profile := newTestProfile()
	profileUC.On("GetProfile", mock.Anything, profile.ID).Return(profile, nil)

	req := httptest.NewRequest(http.MethodGet, "/users/"+profile.ID.String(), nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), profile.Username)
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	profileUC := &mockProfileUsecase{}
	e := newTestEcho(&mockAuthUsecase{}, &mockBlogUsecase{}, profileUC)

	id := uuid.New()
	profileUC.On("GetProfile", mock.Anything, id).
		Return(nil, domainerrors.ErrProfileNotFound.WrapMessage("profile does not exist"))

	req := httptest.NewRequest(http.MethodGet, "/users/"+id.String(), nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PROFILE_NOT_FOUND")
}

func TestUserHandler_UpdateUsername_Success(t *testing.T) {
	authUC := &mockAuthUsecase{}
	profileUC := &mockProfileUsecase{}
	e := newTestEcho(authUC, &mockBlogUsecase{}, profileUC)

	profile := newTestProfile()
	authUC.On("Resolve", mock.Anything, "good-token").Return(profile, nil)

	updated := *profile
	updated.Username = "renamed"
	profileUC.On("UpdateUsername", mock.Anything, profile.ID, &usecase.UpdateUsernameInput{
		Username: "renamed",
	}).Return(&updated, nil)

	body := `{"username":"renamed"}`
	req := httptest.NewRequest(http.MethodPatch, "/users/me", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "renamed")
}

func TestUserHandler_UpdateUsername_TooShort(t *testing.T) {
	authUC := &mockAuthUsecase{}
	profileUC := &mockProfileUsecase{}
	e := newTestEcho(authUC, &mockBlogUsecase{}, profileUC)

	profile := newTestProfile()
	authUC.On("Resolve", mock.Anything, "good-token").Return(profile, nil)

	body := `{"username":"ab"}`
	req := httptest.NewRequest(http.MethodPatch, "/users/me", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	profileUC.AssertNotCalled(t, "UpdateUsername", mock.Anything, mock.Anything, mock.Anything)
}
