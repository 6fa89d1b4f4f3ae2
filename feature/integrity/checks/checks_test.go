package checks

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validManifest = `{
  "name": "Bus Tracker",
  "short_name": "Tracker",
  "start_url": "/demo.html",
  "display": "standalone",
  "background_color": "#ffffff",
  "theme_color": "#1a237e",
  "icons": []
}`

const validServiceWorker = `
const CACHE_NAME = 'v1';
self.addEventListener('install', (event) => {});
self.addEventListener("fetch", (event) => {});
`

func TestCheckFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"demo.html":     {Data: []byte("<h1>ok</h1>")},
		"manifest.json": {Data: []byte(validManifest)},
		"js/app.js":     {Data: []byte("console.log(1)")},
	}

	results, err := CheckFiles(fsys, []string{"demo.html", "sw.js", "js", "js/app.js"})
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, Result{Check: "File: demo.html", Status: StatusPass, Message: "File exists"}, results[0])
	assert.Equal(t, Result{Check: "File: sw.js", Status: StatusFail, Message: "File missing"}, results[1])
	assert.Equal(t, StatusFail, results[2].Status)
	assert.Equal(t, StatusPass, results[3].Status)
}

func TestCheckManifest(t *testing.T) {
	tests := []struct {
		name    string
		fsys    fstest.MapFS
		status  Status
		message string
	}{
		{
			name:    "valid",
			fsys:    fstest.MapFS{"manifest.json": {Data: []byte(validManifest)}},
			status:  StatusPass,
			message: "All required fields present",
		},
		{
			name:    "missing file",
			fsys:    fstest.MapFS{},
			status:  StatusFail,
			message: "Invalid JSON or file not found",
		},
		{
			name:    "invalid json",
			fsys:    fstest.MapFS{"manifest.json": {Data: []byte("{name:")}},
			status:  StatusFail,
			message: "Invalid JSON or file not found",
		},
		{
			name:    "not an object",
			fsys:    fstest.MapFS{"manifest.json": {Data: []byte(`["name"]`)}},
			status:  StatusFail,
			message: "Invalid JSON or file not found",
		},
		{
			name:    "missing fields",
			fsys:    fstest.MapFS{"manifest.json": {Data: []byte(`{"name":"x","display":"standalone"}`)}},
			status:  StatusFail,
			message: "Missing required fields: short_name, start_url, background_color, theme_color, icons",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := CheckManifest(tt.fsys)
			assert.Equal(t, "PWA Manifest", res.Check)
			assert.Equal(t, tt.status, res.Status)
			assert.Equal(t, tt.message, res.Message)
		})
	}
}

func TestCheckServiceWorker(t *testing.T) {
	tests := []struct {
		name    string
		fsys    fstest.MapFS
		status  Status
		message string
	}{
		{
			name:   "valid",
			fsys:   fstest.MapFS{"sw.js": {Data: []byte(validServiceWorker)}},
			status: StatusPass,
		},
		{
			name:    "missing file",
			fsys:    fstest.MapFS{},
			status:  StatusFail,
			message: "File not found or invalid",
		},
		{
			name:    "missing fetch",
			fsys:    fstest.MapFS{"sw.js": {Data: []byte("self.addEventListener('install', () => {});\n// fetch later")}},
			status:  StatusFail,
			message: "Missing event listeners: fetch",
		},
		{
			name:    "no listeners",
			fsys:    fstest.MapFS{"sw.js": {Data: []byte("")}},
			status:  StatusFail,
			message: "Missing event listeners: install, fetch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := CheckServiceWorker(tt.fsys)
			assert.Equal(t, "Service Worker", res.Check)
			assert.Equal(t, tt.status, res.Status)
			if tt.message != "" {
				assert.Equal(t, tt.message, res.Message)
			}
		})
	}
}

func TestCheckScripts(t *testing.T) {
	t.Run("missing directory warns", func(t *testing.T) {
		results, err := CheckScripts(fstest.MapFS{"demo.html": {Data: []byte("x")}})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, StatusWarn, results[0].Status)
		assert.Equal(t, "Directory not found", results[0].Message)
	})

	t.Run("file instead of directory fails", func(t *testing.T) {
		results, err := CheckScripts(fstest.MapFS{"js": {Data: []byte("x")}})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, StatusFail, results[0].Status)
	})

	t.Run("no scripts warns", func(t *testing.T) {
		results, err := CheckScripts(fstest.MapFS{"js/readme.txt": {Data: []byte("x")}})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, StatusWarn, results[0].Status)
	})

	t.Run("empty and non-empty scripts", func(t *testing.T) {
		results, err := CheckScripts(fstest.MapFS{
			"js/app.js":        {Data: []byte("console.log(1)")},
			"js/lib/empty.js":  {Data: []byte{}},
			"js/lib/style.css": {Data: []byte("body{}")},
		})
		require.NoError(t, err)
		require.Len(t, results, 2)

		assert.Equal(t, "JavaScript: js/app.js", results[0].Check)
		assert.Equal(t, StatusPass, results[0].Status)
		assert.Equal(t, "14 bytes", results[0].Message)

		assert.Equal(t, "JavaScript: js/lib/empty.js", results[1].Check)
		assert.Equal(t, StatusFail, results[1].Status)
		assert.Equal(t, "File is empty", results[1].Message)
	})
}
