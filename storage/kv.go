// Package storage provides the namespaced key-value backends the journal
// persists its collections to.
package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("not found")

// KV is a durable string-keyed blob store scoped to a single namespace.
// Put replaces any prior value for the key. Clear removes every key in the
// namespace, not just the ones the caller knows about.
type KV interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Clear() error
	Close() error
}

// Open returns the backend named by kind: "sqlite", "file" or "memory".
func Open(kind, path, namespace string) (KV, error) {
	switch kind {
	case "sqlite":
		return NewSQLite(path, namespace)
	case "file":
		return NewFile(path, namespace)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage type %q", kind)
	}
}
