package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"demo-server/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "demo.html", cfg.Server.LandingPage)
	assert.Equal(t, "README.md", cfg.Server.DocsPage)
	assert.True(t, cfg.Server.OpenBrowser)
	assert.Equal(t, 1, cfg.Server.MaxConnections)
	assert.Equal(t, 10, cfg.Server.ReadTimeoutSeconds)
	assert.True(t, cfg.Server.SecurityHeaders)
	assert.False(t, cfg.Server.Swagger)
	assert.Equal(t, []string{"demo.html", "manifest.json", "sw.js", "js/app.js"}, cfg.Server.RequiredFiles)
	assert.NoError(t, cfg.Server.Validate())

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)

	assert.Equal(t, "demo", cfg.Storage.Bucket)
	assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)

	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 3306, cfg.Database.Port)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_OPEN_BROWSER", "false")
	t.Setenv("SERVER_BASE_DIR", "/srv/demo")
	t.Setenv("SERVER_REQUIRED_FILES", "index.html,app.js")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("DATABASE_ENABLED", "true")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.False(t, cfg.Server.OpenBrowser)
	assert.Equal(t, "/srv/demo", cfg.Server.BaseDir)
	assert.Equal(t, []string{"index.html", "app.js"}, cfg.Server.RequiredFiles)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Database.Enabled)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_LANDING_PAGE=index.html\nSTORAGE_BUCKET=site\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("SERVER_LANDING_PAGE")
		os.Unsetenv("STORAGE_BUCKET")
	})

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "index.html", cfg.Server.LandingPage)
	assert.Equal(t, "site", cfg.Storage.Bucket)
}

func TestLoadConfig_InvalidValue(t *testing.T) {
	t.Setenv("SERVER_PORT", "eighty")

	_, err := config.LoadConfig(t.TempDir())
	assert.Error(t, err)
}
