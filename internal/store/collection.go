package store

import (
	"encoding/json"
	"fmt"
)

// readCollection decodes the JSON array stored under key. A missing key
// or corrupt value is the documented default for absent collections: an
// empty slice, never an error.
func readCollection[T any](kv KeyValueStore, key string) []T {
	raw, ok := kv.Read(key)
	if !ok || raw == "" {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []T{}
	}
	return items
}

// writeCollection encodes items and writes the whole array back under
// key. An encode failure is a logic error (writers round-trip through
// readCollection first), a write failure is a real save failure; both
// propagate.
func writeCollection[T any](kv KeyValueStore, key string, items []T) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s collection: %w", key, err)
	}
	return kv.Write(key, string(payload))
}
