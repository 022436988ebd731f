package dedupe

import "runtime/debug"

type MapBackend struct {
	storage map[string]struct{}
}

func NewMapBackend() *MapBackend {
	return &MapBackend{storage: map[string]struct{}{}}
}

func (m *MapBackend) Upsert(elem string) bool {
	if _, ok := m.storage[elem]; ok {
		return false
	}
	m.storage[elem] = struct{}{}
	return true
}

func (m *MapBackend) Cleanup() {
	m.storage = nil
	// the runtime keeps freed heap around for reuse, large sets are
	// released to the OS right away
	debug.FreeOSMemory()
}
