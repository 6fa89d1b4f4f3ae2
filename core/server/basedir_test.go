package server

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubExecutable(t *testing.T, path string, err error) {
	t.Helper()
	orig := executable
	executable = func() (string, error) { return path, err }
	t.Cleanup(func() { executable = orig })
}

func TestResolveBaseDir_Explicit(t *testing.T) {
	dir := t.TempDir()

	got, err := ResolveBaseDir(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestResolveBaseDir_Relative(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	got, err := ResolveBaseDir(".")
	require.NoError(t, err)
	assert.Equal(t, wd, got)
}

func TestResolveBaseDir_Missing(t *testing.T) {
	_, err := ResolveBaseDir(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestResolveBaseDir_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "demo.html")
	require.NoError(t, os.WriteFile(file, []byte("<h1>ok</h1>"), 0o644))

	_, err := ResolveBaseDir(file)
	assert.ErrorContains(t, err, "is not a directory")
}

func TestResolveBaseDir_ExecutableDir(t *testing.T) {
	root := t.TempDir()
	tmp := filepath.Join(root, "tmp")
	bin := filepath.Join(root, "bin")
	require.NoError(t, os.Mkdir(tmp, 0o755))
	require.NoError(t, os.Mkdir(bin, 0o755))
	t.Setenv("TMPDIR", tmp)

	stubExecutable(t, filepath.Join(bin, "demo-server"), nil)

	got, err := ResolveBaseDir("")
	require.NoError(t, err)
	assert.Equal(t, bin, got)
}

func TestResolveBaseDir_GoRunFallsBackToWorkingDir(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	stubExecutable(t, filepath.Join(os.TempDir(), "go-build123", "b001", "exe", "demo-server"), nil)

	got, err := ResolveBaseDir("")
	require.NoError(t, err)
	assert.Equal(t, wd, got)
}

func TestResolveBaseDir_ExecutableError(t *testing.T) {
	stubExecutable(t, "", errors.New("unsupported"))

	_, err := ResolveBaseDir("")
	assert.ErrorContains(t, err, "failed to locate executable")
}
