// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a server that can be started and blocks until it stops.
// Shutdown is handled by the Fx lifecycle, not by the Serve caller.
type Delivery interface {
	Serve(ctx context.Context) error
}
