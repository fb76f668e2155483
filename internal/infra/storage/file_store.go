// Package storage provides the device-local key-value store drivers.
package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"nosh/internal/domain/repository"

	"github.com/pkg/errors"
)

const storeFileMode = 0o600

// fileStore persists all keys in a single JSON file, rewritten atomically
// (temp file + rename) on every mutation. A single process owns the file;
// the mutex serializes mutations within it.
type fileStore struct {
	path string
	mu   sync.RWMutex
	data map[string]string
}

// NewFileStore opens (or creates) the store file at dir/store.json.
func NewFileStore(dir string) (repository.KVStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "failed to create store directory")
	}

	s := &fileStore{
		path: filepath.Join(dir, "store.json"),
		data: make(map[string]string),
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}

		return nil, errors.Wrap(err, "failed to read store file")
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, errors.Wrap(err, "failed to parse store file")
	}

	return s, nil
}

func (s *fileStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return "", repository.ErrKeyNotFound
	}

	return value, nil
}

func (s *fileStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.data[key]
	s.data[key] = value

	if err := s.flushLocked(); err != nil {
		// Keep memory and disk in agreement on failure.
		if existed {
			s.data[key] = previous
		} else {
			delete(s.data, key)
		}

		return errors.Wrapf(err, "failed to persist key %q", key)
	}

	return nil
}

func (s *fileStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.data[key]
	if !existed {
		return nil
	}
	delete(s.data, key)

	if err := s.flushLocked(); err != nil {
		s.data[key] = previous

		return errors.Wrapf(err, "failed to persist removal of key %q", key)
	}

	return nil
}

// flushLocked writes the whole map atomically. Callers hold the write lock.
func (s *fileStore) flushLocked() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode store")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, storeFileMode); err != nil {
		return errors.Wrap(err, "failed to write temp store file")
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "failed to replace store file")
	}

	return nil
}
