package checks

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// ScriptsDir holds the application's JavaScript modules.
const ScriptsDir = "js"

// CheckScripts reports one result per .js file under ScriptsDir. Empty files
// fail. A missing directory yields a single warning.
func CheckScripts(fsys fs.FS) ([]Result, error) {
	info, err := fs.Stat(fsys, ScriptsDir)
	if errors.Is(err, fs.ErrNotExist) {
		return []Result{warn("JavaScript: "+ScriptsDir+"/", "Directory not found")}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", ScriptsDir, err)
	}
	if !info.IsDir() {
		return []Result{fail("JavaScript: "+ScriptsDir+"/", "Expected a directory")}, nil
	}

	var results []Result
	err = fs.WalkDir(fsys, ScriptsDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(path.Ext(p), ".js") {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return err
		}

		check := "JavaScript: " + p
		if fi.Size() == 0 {
			results = append(results, fail(check, "File is empty"))
		} else {
			results = append(results, pass(check, fmt.Sprintf("%d bytes", fi.Size())))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", ScriptsDir, err)
	}

	if len(results) == 0 {
		results = append(results, warn("JavaScript: "+ScriptsDir+"/", "No JavaScript files found"))
	}
	return results, nil
}
