// Package server holds the HTTP server configuration: listen port and the
// JWT secret used by the auth middleware. The Fiber app itself is assembled
// in cmd/start.
package server
