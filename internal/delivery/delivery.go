// Package delivery defines the transport-facing surface of the service.
package delivery

import "context"

// Delivery is a serving transport (HTTP server, queue consumer). Serve blocks
// until the context is cancelled or the transport fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
