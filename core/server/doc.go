// Package server serves the demo's static files over HTTP.
//
// # Configuration
//
// The Config struct defines the listen address, the base directory, the
// landing page opened in the browser and the middleware toggles. Config is
// built once at startup and passed explicitly: the process working directory
// is never changed, so several servers can coexist in one process (tests do).
//
// # Components
//
//   - ResolveBaseDir: picks the served directory (explicit, or the
//     executable's own directory).
//   - NewApp: assembles the Fiber app. Middleware first, then the /api
//     features, then the filesystem handler with directory listings and a
//     plain-text 404 fallback.
//   - Launcher: binds the listener (optionally limited to N live connections),
//     runs the advisory browser launch, serves until its context is cancelled
//     and shuts down gracefully.
//   - Status: the human readable lines printed to the operator.
//
// # Errors
//
// Bind failures are classified from the structured errno into ErrPortInUse
// and ErrBind. The browser launch is never an error; see core/advisory.
package server
