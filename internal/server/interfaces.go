package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations block in [Server.RunServer] until they stop and release
// their resources in [Server.Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// A stop requested through Shutdown is not an error.
	RunServer() error

	// Shutdown gracefully stops the server, giving up when ctx ends.
	Shutdown(ctx context.Context) error
}
