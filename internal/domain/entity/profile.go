// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the locally stored public identity of an account.
// Its ID is shared with the external auth provider's identity record;
// the provider owns the paired credential (password hash, confirmation
// state) and the two are linked only by that shared identifier.
type Profile struct {
	ID        uuid.UUID // Identity id assigned by the external auth provider, used as the primary key.
	Username  string    // Public display name, 3-50 characters.
	Email     string    // Login email, unique across profiles.
	CreatedAt time.Time // Timestamp of when the profile row was created.
}
