// Package delivery defines the entrypoints that serve the application.
package delivery

import "context"

// Delivery is a serving surface (HTTP today). Serve blocks until the
// listener fails or the process shuts down.
type Delivery interface {
	Serve(ctx context.Context) error
}
