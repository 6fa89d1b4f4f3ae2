package checks

import (
	"errors"
	"fmt"
	"io/fs"
)

// CheckFiles reports one result per required file. Paths are slash-separated
// and relative to the root of fsys.
func CheckFiles(fsys fs.FS, required []string) ([]Result, error) {
	results := make([]Result, 0, len(required))
	for _, name := range required {
		check := "File: " + name

		info, err := fs.Stat(fsys, name)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			results = append(results, fail(check, "File missing"))
		case err != nil:
			return nil, fmt.Errorf("failed to stat %s: %w", name, err)
		case info.IsDir():
			results = append(results, fail(check, "Expected a file, found a directory"))
		default:
			results = append(results, pass(check, "File exists"))
		}
	}
	return results, nil
}
