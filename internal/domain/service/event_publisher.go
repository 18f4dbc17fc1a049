package service

import "context"

// AuthEvent is published on auth lifecycle transitions. The
// identity.orphaned event is the reconciliation hook for the two-step
// registration flow: it names a provider identity that has no local
// profile row so a sweep job can repair the gap.
type AuthEvent struct {
	Type       string `json:"type"`       // Event type, see internal/domain/constants.
	IdentityID string `json:"identityId"` // Provider-assigned identity id.
	Email      string `json:"email"`
	RequestID  string `json:"requestId,omitempty"` // For tracing, when available.
}

// EventPublisher publishes auth lifecycle events to the configured
// transport (Google Pub/Sub, a local HTTP endpoint, or a no-op).
type EventPublisher interface {
	PublishAuthEvent(ctx context.Context, event *AuthEvent) error
	Close() error
}
