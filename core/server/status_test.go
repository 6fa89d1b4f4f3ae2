package server_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"demo-server/core/server"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Banner(t *testing.T) {
	var buf bytes.Buffer
	s := server.NewStatus(&buf)

	s.Banner(server.Config{
		Title:       "Bus Tracker Demo Server",
		Port:        8080,
		LandingPage: "demo.html",
		DocsPage:    "README.md",
	}, "/srv/demo", 8080)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"Bus Tracker Demo Server",
		"Serving files from: /srv/demo",
		"Server starting on http://localhost:8080/",
		"Open http://localhost:8080/demo.html to view the demo",
		"Documentation: http://localhost:8080/README.md",
		"Press Ctrl+C to stop the server",
	}, lines)
}

func TestStatus_BannerWithoutDocs(t *testing.T) {
	var buf bytes.Buffer
	server.NewStatus(&buf).Banner(server.Config{Port: 8080, LandingPage: "demo.html"}, "/srv", 8080)

	assert.NotContains(t, buf.String(), "Documentation")
}

func TestStatus_Lines(t *testing.T) {
	tests := []struct {
		name  string
		print func(s *server.Status)
		want  string
	}{
		{"Running", func(s *server.Status) { s.Running() }, "Server running successfully!"},
		{"BrowserOpened", func(s *server.Status) { s.BrowserOpened() }, "Browser opened automatically!"},
		{"ManualOpen", func(s *server.Status) { s.ManualOpen("http://localhost:8080/demo.html") }, "Manually open: http://localhost:8080/demo.html"},
		{"Stopped", func(s *server.Status) { s.Stopped() }, "Server stopped by user"},
		{"PortInUse", func(s *server.Status) { s.PortInUse(8080) }, "Port 8080 is already in use. Try a different port or stop the existing server."},
		{"StartFailed", func(s *server.Status) { s.StartFailed(errors.New("permission denied")) }, "Error starting server: permission denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(server.NewStatus(&buf))
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestStatus_NilWriter(t *testing.T) {
	assert.NotPanics(t, func() {
		server.NewStatus(nil).Running()
	})
}
