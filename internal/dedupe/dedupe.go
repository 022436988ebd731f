// Package dedupe remembers lines already written so repeated output can be dropped.
package dedupe

import "github.com/projectdiscovery/gologger"

// MaxInMemorySize is the input size above which a disk backed store is used (default : 100 MB)
var MaxInMemorySize = 100 * 1024 * 1024

// Backend records seen elements
type Backend interface {
	// Upsert adds elem and reports whether it was not seen before
	Upsert(elem string) bool
	// Cleanup releases the storage
	Cleanup()
}

// New returns a backend suited for roughly byteLen bytes of input.
// Note: If byteLen is underestimated the in-memory backend may consume a lot of memory
func New(byteLen int) Backend {
	if byteLen <= MaxInMemorySize {
		return NewMapBackend()
	}
	b, err := NewHybridBackend()
	if err != nil {
		gologger.Warning().Msgf("dedupe: falling back to memory storage: %v", err)
		return NewMapBackend()
	}
	return b
}
