package entity

import (
	"time"

	"github.com/google/uuid"
)

// Blog is a single post. AuthorID always references an existing
// Profile and is assigned by the server from the resolved identity,
// never taken from a request payload.
type Blog struct {
	ID        uuid.UUID // The unique ID of the post.
	Title     string    // Post title, 5-200 characters.
	Body      string    // Post body, at least 10 characters.
	Published bool      // Whether the post is publicly listed. Defaults to true.
	AuthorID  uuid.UUID // Foreign key to the owning Profile.
	CreatedAt time.Time // Timestamp of creation.
	UpdatedAt time.Time // Timestamp of the last mutation.
}
