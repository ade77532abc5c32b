// Package delivery defines the inbound transport contract of the application.
package delivery

import "context"

// Delivery is a serving surface (HTTP, worker) started by the composition root.
type Delivery interface {
	// Serve blocks until the underlying server stops or fails.
	Serve(ctx context.Context) error
}
