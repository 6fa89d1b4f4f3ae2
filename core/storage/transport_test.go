package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSplitEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		endpoint   string
		useSSL     bool
		wantHost   string
		wantSecure bool
	}{
		{"Bare", "localhost:9000", false, "localhost:9000", false},
		{"BareWithSSL", "s3.example.com", true, "s3.example.com", true},
		{"HTTP", "http://localhost:9000", false, "localhost:9000", false},
		{"HTTPKeepsSSLFlag", "http://localhost:9000", true, "localhost:9000", true},
		{"HTTPSForcesTLS", "https://s3.amazonaws.com", false, "s3.amazonaws.com", true},
		{"TrailingSlash", "https://s3.amazonaws.com/", false, "s3.amazonaws.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, secure := splitEndpoint(tt.endpoint, tt.useSSL)
			assert.Equal(t, tt.wantHost, host)
			assert.Equal(t, tt.wantSecure, secure)
		})
	}
}

func TestNewTransport(t *testing.T) {
	tr := newTransport(7 * time.Second)

	assert.Equal(t, 7*time.Second, tr.TLSHandshakeTimeout)
	assert.Equal(t, 7*time.Second, tr.ResponseHeaderTimeout)
	assert.NotNil(t, tr.DialContext)
	assert.NotNil(t, tr.Proxy)
}
