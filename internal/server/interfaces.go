package server

// Server defines the lifecycle contract for the transport servers managed by
// this package.
//
// RunServer blocks until the server stops, either because a shutdown signal
// arrived or because the listener failed.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
