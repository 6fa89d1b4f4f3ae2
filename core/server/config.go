package server

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface to bind; empty means all interfaces.
	Host string `mapstructure:"host" default:""`
	// Port is the port where the server will listen.
	Port int `mapstructure:"port" default:"8080"`
	// BaseDir is the directory served at "/". Empty means the directory
	// holding the executable.
	BaseDir string `mapstructure:"base_dir" default:""`
	// LandingPage is the page opened in the browser after startup.
	LandingPage string `mapstructure:"landing_page" default:"demo.html"`
	// DocsPage is advertised in the startup banner.
	DocsPage string `mapstructure:"docs_page" default:"README.md"`
	// Title is the first line of the startup banner.
	Title string `mapstructure:"title" default:"Bus Tracker Demo Server"`
	// OpenBrowser enables the best-effort browser launch.
	OpenBrowser bool `mapstructure:"open_browser" default:"true"`
	// MaxConnections caps live connections; 1 serves strictly one at a time, 0 is unlimited.
	MaxConnections int `mapstructure:"max_connections" default:"1"`
	// ReadTimeoutSeconds drops connections that send nothing; with a single
	// connection slot an idle browser preconnect would otherwise stall the server.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" default:"10"`
	// ShutdownTimeoutSeconds bounds the graceful shutdown.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"5"`
	// SecurityHeaders enables the helmet middleware.
	SecurityHeaders bool `mapstructure:"security_headers" default:"true"`
	// Compress enables response compression.
	Compress bool `mapstructure:"compress" default:"true"`
	// AllowOrigins is the comma separated CORS origin list.
	AllowOrigins string `mapstructure:"allow_origins" default:"http://localhost:3000,http://localhost:8080"`
	// RateLimitMax is the number of /api requests allowed per window and IP; 0 disables limiting.
	RateLimitMax int `mapstructure:"rate_limit_max" default:"100"`
	// RateLimitWindowSeconds is the rate limiting window.
	RateLimitWindowSeconds int `mapstructure:"rate_limit_window_seconds" default:"900"`
	// Swagger mounts the API documentation UI at /swagger.
	Swagger bool `mapstructure:"swagger" default:"false"`
	// Environment is reported by the health endpoint.
	Environment string `mapstructure:"environment" default:"development"`
	// RequiredFiles are the files the integrity check expects in BaseDir.
	RequiredFiles []string `mapstructure:"required_files" default:"demo.html,manifest.json,sw.js,js/app.js"`
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.MaxConnections < 0 {
		return fmt.Errorf("max_connections must not be negative, got %d", c.MaxConnections)
	}
	if c.ReadTimeoutSeconds < 0 {
		return fmt.Errorf("read_timeout_seconds must not be negative, got %d", c.ReadTimeoutSeconds)
	}
	if c.ShutdownTimeoutSeconds < 0 {
		return fmt.Errorf("shutdown_timeout_seconds must not be negative, got %d", c.ShutdownTimeoutSeconds)
	}
	if c.RateLimitMax < 0 || c.RateLimitWindowSeconds < 0 {
		return fmt.Errorf("rate limit settings must not be negative")
	}
	if strings.Contains(c.LandingPage, "://") {
		return fmt.Errorf("landing_page must be a path relative to the base directory, got %q", c.LandingPage)
	}
	return nil
}

// Address returns the host:port listen address.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Sequential reports whether connections are served strictly one at a time.
func (c Config) Sequential() bool {
	return c.MaxConnections == 1
}

// ReadTimeout returns the per-connection read deadline; zero disables it.
func (c Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// ShutdownTimeout returns the graceful shutdown bound.
func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// LocalURL builds the browser-facing URL of page on the given port.
func LocalURL(port int, page string) string {
	return fmt.Sprintf("http://localhost:%d/%s", port, strings.TrimPrefix(page, "/"))
}
