package checks

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
)

// ManifestFile is the PWA manifest checked by CheckManifest.
const ManifestFile = "manifest.json"

// RequiredManifestFields lists the keys a web app manifest must declare.
var RequiredManifestFields = []string{
	"name", "short_name", "start_url", "display", "background_color", "theme_color", "icons",
}

// CheckManifest validates that the manifest parses as a JSON object and
// declares every required field.
func CheckManifest(fsys fs.FS) Result {
	const check = "PWA Manifest"

	data, err := fs.ReadFile(fsys, ManifestFile)
	if err != nil {
		return fail(check, "Invalid JSON or file not found")
	}

	var manifest map[string]json.RawMessage
	if err := json.Unmarshal(data, &manifest); err != nil {
		return fail(check, "Invalid JSON or file not found")
	}

	var missing []string
	for _, field := range RequiredManifestFields {
		if _, ok := manifest[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return fail(check, fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")))
	}

	return pass(check, "All required fields present")
}
