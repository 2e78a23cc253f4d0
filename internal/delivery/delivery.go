// Package delivery defines the contract shared by all transport frontends.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker, ...) started by
// the composition root. Shutdown is handled through fx lifecycle hooks
// registered by each implementation.
type Delivery interface {
	Serve(ctx context.Context) error
}
