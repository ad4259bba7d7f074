// Package server wires and runs the portal's transport servers.
//
// It provides orchestration for HTTP and gRPC server lifecycles, including
// startup, health tracking, and graceful shutdown of all enabled transports
// once the run context ends.
package server
