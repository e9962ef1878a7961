// Package launch opens island links outside the simulation.
package launch

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/browser"
)

// Browser opens links in the system web browser. Each link is handed off on
// its own goroutine so a slow launcher never stalls a frame.
type Browser struct {
	// open defaults to browser.OpenURL.
	open func(url string) error
	// done, if set, receives every result. Used by tests.
	done chan<- error
}

// NewBrowser returns a Browser that launches with the system handler.
func NewBrowser() *Browser {
	return &Browser{}
}

// logOut is where launch failures are reported.
var logOut io.Writer = os.Stderr

// Open starts the browser on uri. Failures are logged, never returned.
func (b *Browser) Open(uri string) {
	open := b.open
	if open == nil {
		open = browser.OpenURL
	}
	go func() {
		err := open(uri)
		if err != nil {
			_, _ = fmt.Fprintf(logOut, "[archipelago] open %s: %v\n", uri, err)
		}
		if b.done != nil {
			b.done <- err
		}
	}()
}

// Printer writes each opened link as a line to W. It stands in for a
// browser in headless runs.
type Printer struct {
	W io.Writer
}

// Open writes uri followed by a newline.
func (p Printer) Open(uri string) {
	_, _ = fmt.Fprintln(p.W, uri)
}
