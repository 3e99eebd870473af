package server

import "context"

// Server defines the lifecycle contract for the transport server managed
// by this package.
type Server interface {
	// RunServer starts serving requests and blocks until ctx is cancelled or
	// a termination signal arrives, then shuts down gracefully. It returns
	// nil after a clean shutdown.
	RunServer(ctx context.Context) error
}
