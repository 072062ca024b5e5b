// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a long-running inbound adapter (HTTP server, worker, ...).
// Implementations are collected into the "deliveries" Fx group and started
// together by the application entrypoint.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}
