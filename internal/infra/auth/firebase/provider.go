// Package firebase implements the IdentityProvider contract against
// Firebase Auth. Identity administration goes through the Admin SDK
// with a service account; password verification goes through the
// Identity Toolkit REST API with the project's web API key, since the
// Admin SDK has no password check.
package firebase

import (
	"context"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/googleapi"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"

	"quill/config"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/service"
)

type identityProvider struct {
	admin   *fbauth.Client
	toolkit *identitytoolkit.RelyingpartyService
	logger  *slog.Logger
}

// NewIdentityProvider creates the Firebase-backed identity provider.
func NewIdentityProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.IdentityProvider, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	credentials := option.WithCredentialsFile(cfg.Firebase.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, credentials)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	admin, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	toolkitSvc, err := identitytoolkit.NewService(ctx, option.WithAPIKey(cfg.Firebase.WebAPIKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity toolkit service")
	}

	return &identityProvider{
		admin:   admin,
		toolkit: toolkitSvc.Relyingparty,
		logger:  logger,
	}, nil
}

// CreateIdentity registers the credential pair with Firebase Auth.
// Firebase hashes and stores the password. The identity id is minted
// here as a UUID and handed to the provider as the UID, so the same
// identifier can serve as the profile table's primary key; Firebase's
// default UIDs are not UUID-shaped.
func (p *identityProvider) CreateIdentity(ctx context.Context, email, password string) (string, error) {
	params := (&fbauth.UserToCreate{}).
		UID(uuid.New().String()).
		Email(email).
		Password(password)

	record, err := p.admin.CreateUser(ctx, params)
	if err != nil {
		if fbauth.IsEmailAlreadyExists(err) {
			return "", domainerrors.ErrEmailTaken.WrapMessage("provider already holds this email")
		}

		p.logger.Warn("Auth provider rejected identity creation", slog.String("email", email), slog.Any("error", err))

		return "", domainerrors.ErrProviderRejected.WithDetails(err.Error())
	}

	return record.UID, nil
}

// VerifyPassword authenticates the credential pair and returns the
// provider identity id. Wrong email or password both collapse into
// ErrInvalidCredentials.
func (p *identityProvider) VerifyPassword(ctx context.Context, email, password string) (string, error) {
	request := &identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}

	response, err := p.toolkit.VerifyPassword(request).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code < 500 {
			return "", domainerrors.ErrInvalidCredentials.WrapMessage("provider rejected credentials")
		}

		return "", errors.Wrap(err, "failed to verify password with provider")
	}

	if response.LocalId == "" {
		return "", errors.New("provider did not return an identity id")
	}

	return response.LocalId, nil
}
