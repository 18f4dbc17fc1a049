// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "quill/internal/delivery/context"
	"quill/internal/domain/constants"
	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/domain/service"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface. It coordinates the
// external auth provider (credential owner) and the local profile
// store (identity owner), linked only by the shared identity id.
type authService struct {
	profileRepo repository.ProfileRepository
	provider    service.IdentityProvider
	tokenSvc    service.TokenService
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Provider    service.IdentityProvider
	TokenSvc    service.TokenService
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		profileRepo: params.ProfileRepo,
		provider:    params.Provider,
		tokenSvc:    params.TokenSvc,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration process:
// email uniqueness check, provider identity creation, local profile
// insert with the elevated client, token issuance.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	// The uniqueness check runs before any provider call so a taken
	// email never creates an orphaned provider identity.
	_, err := srv.profileRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrEmailTaken.WrapMessage("email already registered")
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to check email uniqueness")
	}

	identityID, err := srv.provider.CreateIdentity(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Provider rejected identity creation", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	subject, err := uuid.Parse(identityID)
	if err != nil {
		return nil, errors.Wrap(err, "provider returned a malformed identity id")
	}

	profile := &entity.Profile{
		ID:       subject,
		Username: input.Username,
		Email:    input.Email,
	}

	// The provider identity now exists. If the profile insert fails the
	// two systems are out of sync: report the orphaned identity for
	// reconciliation and tell the client to retry. The insert is
	// idempotent on the identity id, so the retry heals the gap.
	if err := srv.profileRepo.Create(ctx, profile); err != nil {
		srv.log(ctx).Error("Profile creation failed after provider identity was created",
			slog.String("identity_id", identityID), slog.Any("error", err))

		srv.publishEvent(ctx, constants.EventIdentityOrphaned, identityID, input.Email)

		return nil, domainerrors.ErrRegistrationIncomplete.WrapMessage("profile insert failed")
	}

	srv.publishEvent(ctx, constants.EventUserRegistered, identityID, input.Email)

	token, err := srv.tokenSvc.GenerateToken(subject)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token after registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("identity_id", identityID))

	return &usecase.TokenOutput{AccessToken: token, TokenType: "bearer"}, nil
}

// Login verifies credentials with the provider and issues a token for
// the returned identity id. The local profile is not read here; it is
// resolved lazily by later requests through Resolve.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	identityID, err := srv.provider.VerifyPassword(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Login rejected", slog.String("email", input.Email))

		return nil, err
	}

	subject, err := uuid.Parse(identityID)
	if err != nil {
		return nil, errors.Wrap(err, "provider returned a malformed identity id")
	}

	token, err := srv.tokenSvc.GenerateToken(subject)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token after login")
	}

	return &usecase.TokenOutput{AccessToken: token, TokenType: "bearer"}, nil
}

// Resolve maps a bearer token to its persisted profile. A bad token
// and a valid token whose subject has no profile row produce the same
// error on purpose; distinguishing them would reveal which accounts
// exist.
func (srv *authService) Resolve(ctx context.Context, tokenString string) (*entity.Profile, error) {
	claims, err := srv.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("token validation failed")
	}

	profile, err := srv.profileRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrUnauthenticated.WrapMessage("token subject has no profile")
		}

		return nil, errors.Wrap(err, "failed to load profile for token subject")
	}

	return profile, nil
}

// publishEvent emits an auth lifecycle event. Publishing is
// best-effort: a transport failure is logged, never surfaced to the
// client.
func (srv *authService) publishEvent(ctx context.Context, eventType, identityID, email string) {
	event := &service.AuthEvent{
		Type:       eventType,
		IdentityID: identityID,
		Email:      email,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
	}

	if err := srv.publisher.PublishAuthEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish auth event",
			slog.String("type", eventType), slog.Any("error", err))
	}
}
