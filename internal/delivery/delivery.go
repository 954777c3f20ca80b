// Package delivery defines the transport-facing contracts shared by the
// HTTP API server and the background workers.
package delivery

import "context"

// Delivery is a long-running transport endpoint. Serve blocks until the
// endpoint stops; graceful shutdown happens through fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
