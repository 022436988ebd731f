package dedupe

import (
	"fmt"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/hmap/store/hybrid"
)

// seenMarker is the value stored for every key
var seenMarker = []byte{1}

// HybridBackend keeps seen elements in a disk backed hmap
type HybridBackend struct {
	storage *hybrid.HybridMap
}

func NewHybridBackend() (*HybridBackend, error) {
	db, err := hybrid.New(hybrid.DefaultDiskOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir for twmerge dedupe: %w", err)
	}
	return &HybridBackend{storage: db}, nil
}

func (h *HybridBackend) Upsert(elem string) bool {
	if _, ok := h.storage.Get(elem); ok {
		return false
	}
	if err := h.storage.Set(elem, seenMarker); err != nil {
		gologger.Error().Msgf("dedupe: hybrid: got %v while writing %v", err, elem)
	}
	return true
}

func (h *HybridBackend) Cleanup() {
	_ = h.storage.Close()
}
