package server

import "context"

// Server defines the lifecycle contract of the transport server managed by
// this package.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT is
	// received, then shuts down gracefully.
	RunServer()

	// Run serves requests until ctx is cancelled or the listener fails.
	// A cancelled ctx triggers a graceful shutdown and a nil return.
	Run(ctx context.Context) error
}
