// Package logger provides a structured logging facility based on Zap.
//
// It builds a configured logger for the CLI commands and the HTTP server, and
// integrates with the Fiber web framework through the WithRayID helper, which
// attaches the request id set by the rayid middleware to every entry logged
// while handling that request.
//
// # Configuration
//
//   - Level: debug, info, warn, error (debug switches to zap's development config)
//   - Format: console (colored, human readable) or json
//   - Output: stderr, stdout or a file path
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
