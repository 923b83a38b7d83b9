// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the
// handler.
//
// # Components
//
//   - Auth: validates HS256 bearer tokens and injects the authenticated
//     user ID into request locals.
//   - RayID: generates a unique request ID (ray ID) for every incoming
//     request, injecting it into the context and response headers for
//     tracing.
//
// These middleware components are registered globally or per-route group in
// the main application setup.
package middleware
