// Package delivery defines the contract every transport entrypoint fulfils.
package delivery

import "context"

// Delivery is a serving surface (HTTP, background worker) started by the
// application container. Serve blocks until the surface stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
