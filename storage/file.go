package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var errCorruptFile = errors.New("corrupt store file")

// File keeps every namespace in one JSON document on disk, shaped as
// {"namespace": {"key": <raw json value>}}. Every write rewrites the file.
type File struct {
	path      string
	namespace string
	mu        sync.Mutex
}

func NewFile(path, namespace string) (*File, error) {
	if path == "" {
		return nil, errors.New("empty storage path")
	}
	return &File{path: path, namespace: namespace}, nil
}

func (f *File) read() (map[string]map[string]json.RawMessage, error) {
	out := map[string]map[string]json.RawMessage{}

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return out, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", errCorruptFile, f.path, err)
	}
	return out, nil
}

// readForWrite is read for mutations. An unparseable file starts over as
// an empty document that the write then replaces.
func (f *File) readForWrite() (map[string]map[string]json.RawMessage, error) {
	all, err := f.read()
	if errors.Is(err, errCorruptFile) {
		return map[string]map[string]json.RawMessage{}, nil
	}
	return all, err
}

func (f *File) write(all map[string]map[string]json.RawMessage) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o644)
}

func (f *File) Get(key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	all, err := f.read()
	if err != nil {
		return nil, err
	}
	v, ok := all[f.namespace][key]
	if !ok {
		return nil, ErrNotFound
	}
	return []byte(v), nil
}

// Put stores value as raw JSON when it is valid JSON, and as a JSON string
// otherwise, so the file always stays well-formed.
func (f *File) Put(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	all, err := f.readForWrite()
	if err != nil {
		return err
	}
	raw := json.RawMessage(append([]byte(nil), value...))
	if !json.Valid(value) {
		raw, err = json.Marshal(string(value))
		if err != nil {
			return err
		}
	}
	ns := all[f.namespace]
	if ns == nil {
		ns = map[string]json.RawMessage{}
		all[f.namespace] = ns
	}
	ns[key] = raw
	return f.write(all)
}

func (f *File) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	all, err := f.readForWrite()
	if err != nil {
		return err
	}
	delete(all, f.namespace)
	return f.write(all)
}

func (f *File) Close() error { return nil }
