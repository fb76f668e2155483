package backend

import (
	"context"
	"log/slog"
	"sync"

	"nosh/internal/domain/repository"

	"nosh/internal/errors"
)

// HeaderSnapshot is the in-memory mirror of the persisted values that
// decorate every outbound request. It is seeded from the store at boot
// and kept consistent by write-through: every store mutation of a
// tracked key updates the snapshot before control returns to the caller.
// Reading it never touches storage, so decoration cannot fail.
type HeaderSnapshot struct {
	mu        sync.RWMutex
	token     string
	zoneID    string
	latitude  string
	longitude string
}

// NewHeaderSnapshot creates an empty snapshot.
func NewHeaderSnapshot() *HeaderSnapshot {
	return &HeaderSnapshot{}
}

// Seed loads the tracked keys from the store. A failed read leaves the
// corresponding header value empty; requests proceed without it.
func (s *HeaderSnapshot) Seed(ctx context.Context, store repository.KVStore, logger *slog.Logger) {
	for key, set := range map[string]func(string){
		repository.KeyUserToken: s.setToken,
		repository.KeyZoneID:    s.setZoneID,
		repository.KeyLatitude:  s.setLatitude,
		repository.KeyLongitude: s.setLongitude,
	} {
		value, err := store.Get(ctx, key)
		if err != nil {
			if !errors.Is(err, repository.ErrKeyNotFound) {
				logger.Warn("Failed to seed header snapshot", slog.String("key", key), slog.Any("error", err))
			}

			continue
		}
		set(value)
	}
}

func (s *HeaderSnapshot) setToken(v string)     { s.mu.Lock(); s.token = v; s.mu.Unlock() }
func (s *HeaderSnapshot) setZoneID(v string)    { s.mu.Lock(); s.zoneID = v; s.mu.Unlock() }
func (s *HeaderSnapshot) setLatitude(v string)  { s.mu.Lock(); s.latitude = v; s.mu.Unlock() }
func (s *HeaderSnapshot) setLongitude(v string) { s.mu.Lock(); s.longitude = v; s.mu.Unlock() }

// Token returns the current bearer token, empty when logged out.
func (s *HeaderSnapshot) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// ZoneID returns the current zone id, empty when unresolved.
func (s *HeaderSnapshot) ZoneID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.zoneID
}

// Coordinates returns the current latitude/longitude strings.
func (s *HeaderSnapshot) Coordinates() (lat, lng string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.latitude, s.longitude
}

// apply routes a store mutation into the snapshot. Unknown keys are ignored.
func (s *HeaderSnapshot) apply(key, value string) {
	switch key {
	case repository.KeyUserToken:
		s.setToken(value)
	case repository.KeyZoneID:
		s.setZoneID(value)
	case repository.KeyLatitude:
		s.setLatitude(value)
	case repository.KeyLongitude:
		s.setLongitude(value)
	}
}

// watchedStore decorates a KVStore with write-through snapshot updates.
// The snapshot only changes after the durable write succeeded, so it
// never runs ahead of storage.
type watchedStore struct {
	inner    repository.KVStore
	snapshot *HeaderSnapshot
}

// NewWatchedStore wraps a KVStore so writes to the header-relevant keys
// keep the snapshot in sync.
func NewWatchedStore(inner repository.KVStore, snapshot *HeaderSnapshot) repository.KVStore {
	return &watchedStore{inner: inner, snapshot: snapshot}
}

func (w *watchedStore) Get(ctx context.Context, key string) (string, error) {
	return w.inner.Get(ctx, key)
}

func (w *watchedStore) Set(ctx context.Context, key, value string) error {
	if err := w.inner.Set(ctx, key, value); err != nil {
		return err
	}
	w.snapshot.apply(key, value)

	return nil
}

func (w *watchedStore) Delete(ctx context.Context, key string) error {
	if err := w.inner.Delete(ctx, key); err != nil {
		return err
	}
	w.snapshot.apply(key, "")

	return nil
}
