package server

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// executable is swapped in tests.
var executable = os.Executable

// ResolveBaseDir returns the absolute directory to serve. An empty dir
// resolves to the directory holding the running executable; binaries built
// into the temp dir by "go run" fall back to the working directory.
func ResolveBaseDir(dir string) (string, error) {
	if dir == "" {
		var err error
		if dir, err = executableDir(); err != nil {
			return "", err
		}
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve base directory %s: %w", dir, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("base directory %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("base directory %s is not a directory", abs)
	}

	return abs, nil
}

func executableDir() (string, error) {
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	dir := filepath.Dir(exe)
	if isTempBuild(dir) {
		return os.Getwd()
	}
	return dir, nil
}

func isTempBuild(dir string) bool {
	tmp := os.TempDir()
	candidates := []string{tmp}
	if resolved, err := filepath.EvalSymlinks(tmp); err == nil && resolved != tmp {
		candidates = append(candidates, resolved)
	}
	for _, root := range candidates {
		rel, err := filepath.Rel(root, dir)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
