// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Auth event types.
const (
	EventUserRegistered   = "user.registered"
	EventIdentityOrphaned = "identity.orphaned"
)
