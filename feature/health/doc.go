// Package health exposes the liveness endpoint of the demo server.
//
// GET /health (mounted under /api) reports a fixed "OK" status together with
// the current time, the process uptime in seconds, the build version and the
// configured environment name.
package health
