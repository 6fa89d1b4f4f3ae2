package checks

import (
	"fmt"
	"io/fs"
	"regexp"
	"strings"
)

// ServiceWorkerFile is the service worker checked by CheckServiceWorker.
const ServiceWorkerFile = "sw.js"

// RequiredServiceWorkerEvents are the lifecycle events a service worker must handle.
var RequiredServiceWorkerEvents = []string{"install", "fetch"}

func listenerPattern(event string) *regexp.Regexp {
	return regexp.MustCompile(`addEventListener\(\s*['"]` + regexp.QuoteMeta(event) + `['"]`)
}

// CheckServiceWorker verifies the service worker registers a listener for
// every required event. A missing file is a failure.
func CheckServiceWorker(fsys fs.FS) Result {
	const check = "Service Worker"

	data, err := fs.ReadFile(fsys, ServiceWorkerFile)
	if err != nil {
		return fail(check, "File not found or invalid")
	}

	var missing []string
	for _, event := range RequiredServiceWorkerEvents {
		if !listenerPattern(event).Match(data) {
			missing = append(missing, event)
		}
	}
	if len(missing) > 0 {
		return fail(check, fmt.Sprintf("Missing event listeners: %s", strings.Join(missing, ", ")))
	}

	return pass(check, "All required event listeners present")
}
