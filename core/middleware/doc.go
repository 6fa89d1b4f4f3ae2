// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the
// static file handler or the API features.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - AccessLog: Logs every completed request through zap and optionally hands
//     a Hit to a Recorder (the page-hit store) for persistence.
//
// Both are registered globally, before any route, by core/server.NewApp.
package middleware
