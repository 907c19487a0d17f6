// Package delivery holds the entry points that expose the use cases to the outside world.
package delivery

import "context"

// Delivery is a long running server started by the fx application.
type Delivery interface {
	// Serve blocks until the server stops.
	Serve(ctx context.Context) error
}
