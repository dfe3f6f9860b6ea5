package benchmark

import (
	"runtime"

	"github.com/pkg/browser"
)

// Viewer opens rendered charts with the platform's default viewer. Only
// Windows exposes that capability here; elsewhere Open does nothing.
type Viewer struct {
	GOOS string
	open func(path string) error
}

// NewViewer returns a Viewer for the running platform.
func NewViewer() *Viewer {
	return &Viewer{GOOS: runtime.GOOS, open: browser.OpenFile}
}

// Supported reports whether a default viewer can be launched.
func (v *Viewer) Supported() bool {
	return v.GOOS == "windows"
}

// Open launches the viewer for path if supported. It reports whether a
// launch was attempted.
func (v *Viewer) Open(path string) (bool, error) {
	if !v.Supported() || v.open == nil {
		return false, nil
	}
	return true, v.open(path)
}
