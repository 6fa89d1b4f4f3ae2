package advisory

import (
	"io"

	"github.com/pkg/browser"
)

// Opener opens a URL in a web browser.
type Opener interface {
	Open(url string) error
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(url string) error

// Open calls f(url).
func (f OpenerFunc) Open(url string) error {
	return f(url)
}

// SystemBrowser opens URLs with the platform's default browser.
type SystemBrowser struct{}

// Open launches the default browser pointed at url.
func (SystemBrowser) Open(url string) error {
	return browser.OpenURL(url)
}

func init() {
	// xdg-open and friends are chatty; keep the operator's terminal clean.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}
