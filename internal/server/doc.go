// Package server runs the entry server's HTTP transport: startup, signal
// handling and graceful shutdown.
package server
