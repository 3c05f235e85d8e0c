// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a long-running inbound server (HTTP, worker, ...). Serve blocks
// until the server stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
