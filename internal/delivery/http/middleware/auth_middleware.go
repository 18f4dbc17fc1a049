package middleware

import (
	"strings"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	// KeyProfile is the echo.Context key holding the resolved profile.
	KeyProfile = "profile"

	// KeyUserID is the echo.Context key holding the resolved identity id.
	KeyUserID = "userID"
)

// AuthMiddleware resolves the bearer token on protected routes into
// the persisted profile it represents.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate validates the Authorization header and loads the
// profile for the token subject. Every failure mode (missing header,
// malformed token, bad signature, expired token, subject without a
// profile row) yields the same 401 so callers cannot probe which
// accounts exist.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WrapMessage("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthenticated.WrapMessage("authorization header is not a bearer token")
		}

		profile, err := m.authUC.Resolve(c.Request().Context(), tokenString)
		if err != nil {
			return err
		}

		c.Set(KeyProfile, profile)
		c.Set(KeyUserID, profile.ID)

		return next(c)
	}
}

// ProfileFromContext returns the profile stored by Authenticate.
func ProfileFromContext(c echo.Context) (*entity.Profile, bool) {
	profile, ok := c.Get(KeyProfile).(*entity.Profile)

	return profile, ok
}
