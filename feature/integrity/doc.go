// Package integrity provides deployment checks for the served site directory.
//
// The checks mirror what a release needs before it is published:
//
//   - Files: every configured required file exists (demo.html, manifest.json, sw.js, js/app.js by default).
//   - Manifest: manifest.json parses and declares name, short_name, start_url, display, background_color, theme_color and icons.
//   - Service Worker: sw.js registers install and fetch listeners.
//   - JavaScript: every .js file under js/ is non-empty. A missing js/ directory is a warning.
//
// A report is OK when no check failed; warnings are informational.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks and returns the report.
//
// The same checks back the `integrity` CLI command.
package integrity
