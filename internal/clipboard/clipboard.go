// Package clipboard abstracts best-effort access to the system clipboard.
package clipboard

import "github.com/atotto/clipboard"

// Copier places text on the system clipboard. Copy reports whether the text
// made it onto the clipboard; it never fails hard.
type Copier interface {
	Copy(text string) bool
}

// System copies through the platform clipboard mechanism.
type System struct{}

// Copy implements Copier.
func (System) Copy(text string) bool {
	return clipboard.WriteAll(text) == nil
}

// Unavailable is the fallback for platforms without clipboard support.
type Unavailable struct{}

// Copy implements Copier. It always reports failure.
func (Unavailable) Copy(string) bool {
	return false
}

// New selects the clipboard implementation for the current platform.
func New() Copier {
	if clipboard.Unsupported {
		return Unavailable{}
	}
	return System{}
}
