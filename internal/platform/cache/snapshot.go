package cache

import (
	"sync"
	"time"
)

// Snapshot holds the most recent value of a wholesale-refreshed collection.
// Writers always replace the whole value; there is no partial update path.
type Snapshot[T any] struct {
	mu        sync.RWMutex
	value     T
	version   uint64
	loadedAt  time.Time
	stale     bool
	hasLoaded bool
	now       func() time.Time
}

func NewSnapshot[T any]() *Snapshot[T] {
	return &Snapshot[T]{now: time.Now}
}

// Replace overwrites the held value and marks it fresh.
func (s *Snapshot[T]) Replace(value T) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = value
	s.version++
	s.loadedAt = s.now()
	s.stale = false
	s.hasLoaded = true
	return s.version
}

func (s *Snapshot[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Invalidate flags the value as possibly outdated without discarding it.
func (s *Snapshot[T]) Invalidate() {
	s.mu.Lock()
	s.stale = true
	s.mu.Unlock()
}

// Fresh reports whether the value was loaded and not invalidated since.
func (s *Snapshot[T]) Fresh() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasLoaded && !s.stale
}

func (s *Snapshot[T]) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *Snapshot[T]) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
