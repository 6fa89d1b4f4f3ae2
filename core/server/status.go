package server

import (
	"fmt"
	"io"
)

// Status writes the human readable lines shown to the operator. They are
// kept apart from the structured logs so they stay readable whatever the log
// format.
type Status struct {
	w io.Writer
}

// NewStatus returns a Status writing to w (io.Discard when nil).
func NewStatus(w io.Writer) *Status {
	if w == nil {
		w = io.Discard
	}
	return &Status{w: w}
}

func (s *Status) line(format string, args ...any) {
	_, _ = fmt.Fprintf(s.w, format+"\n", args...)
}

// Banner prints the startup summary. Its URLs use port, which is the bound
// port once the listener exists.
func (s *Status) Banner(cfg Config, baseDir string, port int) {
	s.line("%s", cfg.Title)
	s.line("Serving files from: %s", baseDir)
	s.line("Server starting on %s", LocalURL(port, ""))
	s.line("Open %s to view the demo", LocalURL(port, cfg.LandingPage))
	if cfg.DocsPage != "" {
		s.line("Documentation: %s", LocalURL(port, cfg.DocsPage))
	}
	s.line("Press Ctrl+C to stop the server")
}

// Running is printed once the listener is bound.
func (s *Status) Running() {
	s.line("Server running successfully!")
}

// BrowserOpened is printed when the advisory browser launch worked.
func (s *Status) BrowserOpened() {
	s.line("Browser opened automatically!")
}

// ManualOpen is printed when the browser could not be launched.
func (s *Status) ManualOpen(url string) {
	s.line("Manually open: %s", url)
}

// Stopped is printed on operator interrupt.
func (s *Status) Stopped() {
	s.line("")
	s.line("Server stopped by user")
}

// PortInUse is printed when the port is taken by another process.
func (s *Status) PortInUse(port int) {
	s.line("Port %d is already in use. Try a different port or stop the existing server.", port)
}

// StartFailed is printed for any other startup error.
func (s *Status) StartFailed(err error) {
	s.line("Error starting server: %v", err)
}
