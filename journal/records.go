package journal

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/yayangurayan/jurnalforex/storage"
)

// loadRecords reads the sequence stored under key. An absent key yields an
// empty sequence and no error; a value that does not decode yields an
// empty sequence and ErrCorrupt.
func loadRecords[T any](kv storage.KV, key string) ([]T, error) {
	data, err := kv.Get(key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []T{}, nil
		}
		return []T{}, fmt.Errorf("%w: read %s: %v", ErrCorrupt, key, err)
	}

	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return []T{}, fmt.Errorf("%w: decode %s: %v", ErrCorrupt, key, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// saveRecords replaces the value under key with the whole sequence.
func saveRecords[T any](kv storage.KV, key string, seq []T) error {
	if seq == nil {
		seq = []T{}
	}
	data, err := json.Marshal(seq)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := kv.Put(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
