// Package session holds uploaded images for the duration of a browser
// session. It is the only mutable state in the system: an explicit
// key-value store passed by reference into the API layer. The descriptor
// and image generators never touch it.
package session

import (
	"image"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/optic-derm-explorer/internal/domain"
)

// Key identifies one uploaded image slot.
type Key struct {
	BiopsyID string
	Modality domain.Modality
}

// Store is a bounded, expiring store of decoded uploads keyed by
// (biopsy, modality). Entries fall out after the configured TTL, which
// approximates browser-session lifetime, or when capacity is exceeded.
// Safe for concurrent use.
type Store struct {
	cache *expirable.LRU[Key, *image.RGBA]
}

// NewStore creates a store with the given capacity and entry TTL.
// A zero TTL disables expiry; capacity must be positive.
func NewStore(capacity int, ttl time.Duration) *Store {
	return &Store{
		cache: expirable.NewLRU[Key, *image.RGBA](capacity, nil, ttl),
	}
}

// Put stores an uploaded image, replacing any previous upload for the slot.
func (s *Store) Put(biopsyID string, modality domain.Modality, img *image.RGBA) {
	s.cache.Add(Key{BiopsyID: biopsyID, Modality: modality}, img)
}

// Get returns the uploaded image for a slot, if one is present.
func (s *Store) Get(biopsyID string, modality domain.Modality) (*image.RGBA, bool) {
	return s.cache.Get(Key{BiopsyID: biopsyID, Modality: modality})
}

// ClearBiopsy discards every upload for a biopsy and reports how many were
// removed. Uploads for other biopsies are untouched.
func (s *Store) ClearBiopsy(biopsyID string) int {
	removed := 0
	for _, k := range s.cache.Keys() {
		if k.BiopsyID == biopsyID && s.cache.Remove(k) {
			removed++
		}
	}
	return removed
}

// Len returns the number of stored uploads.
func (s *Store) Len() int {
	return s.cache.Len()
}
