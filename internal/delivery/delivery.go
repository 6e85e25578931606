// Package delivery defines the entry points through which the outside
// world reaches the application.
package delivery

import (
	"context"
)

// Delivery is a serving surface (HTTP API, worker push endpoint) started
// by the application container.
type Delivery interface {
	// Serve blocks until the surface stops or fails to start.
	Serve(ctx context.Context) error
}
