// Package storage is the persisted key-value layer: opaque string-keyed JSON
// blobs with best-effort writes and no transactional guarantees.
package storage

import "encoding/json"

// Persisted blob keys. The _v1 suffixes are part of the on-disk contract.
const (
	KeyJournals = "journals_v1"
	KeyLayout   = "dashboard_layout_v1"
	KeyPosts    = "community_posts_v1"
)

type Store interface {
	// Get returns the blob at key; found is false when the key is absent.
	Get(key string) (value []byte, found bool, err error)
	Set(key string, value []byte) error
	Remove(key string) error
}

// LoadJSON decodes the blob at key into v. A missing key, a read error or
// corrupted JSON leaves v untouched and reports loaded=false; corruption is
// never surfaced as an error to callers.
func LoadJSON(s Store, key string, v any) (loaded bool) {
	b, ok, err := s.Get(key)
	if err != nil || !ok {
		return false
	}
	if err := json.Unmarshal(b, v); err != nil {
		return false
	}
	return true
}

// SaveJSON encodes v and writes it under key. Callers log failures; they are
// not fatal (best-effort persistence).
func SaveJSON(s Store, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, b)
}
