// Package server runs the HTTP server of the remote tree store, including
// startup, signal handling and graceful shutdown.
package server
