// Package server wires and runs the application's HTTP server.
//
// It owns the listener lifecycle: startup, reaction to termination signals
// and graceful shutdown that lets in-flight requests finish.
package server
