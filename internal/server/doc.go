// Package server runs the HTTP server of the file storage service.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown on SIGTERM, SIGINT or SIGQUIT.
package server
