// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface and mounts its routes on the
// /api router handed to it by the server. Features that report IsEnabled()
// false (for example the page-hit statistics when no database is configured)
// are skipped.
//
// # Manager
//
// The Manager struct holds the registry of available features. It handles:
//   - Registration of features via Register()
//   - Loading of enabled features, in registration order, via LoadAll()
package loader
