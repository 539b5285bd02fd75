// Package store holds per-view snapshots of backend collections. A view
// replaces its snapshot wholesale on every successful fetch; nothing is
// mutated in place.
package store

import "sync"

// Snapshot is the latest fetched copy of one collection. Each fetch takes a
// token from Begin before issuing the request; Commit rejects any token
// that is not the newest issued, so a slow early response can never
// overwrite the data of a later request.
type Snapshot[T any] struct {
	mu     sync.Mutex
	latest uint64
	data   []T
	loaded bool
}

func New[T any]() *Snapshot[T] {
	return &Snapshot[T]{}
}

// Begin issues the fetch token for a new request and marks every earlier
// in-flight fetch stale.
func (s *Snapshot[T]) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest++
	return s.latest
}

// Commit replaces the snapshot if token is still the latest issued. It
// reports whether the data was accepted.
func (s *Snapshot[T]) Commit(token uint64, data []T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.latest {
		return false
	}
	s.data = data
	s.loaded = true
	return true
}

// Get returns the current snapshot and whether one has been loaded.
func (s *Snapshot[T]) Get() ([]T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data, s.loaded
}

// Clear drops the data but keeps the token sequence, so responses from
// before the clear stay stale.
func (s *Snapshot[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	s.loaded = false
}

// Views keys snapshots by session so each signed-in user owns its copy.
// Snapshots live only as long as the session; Drop removes them at logout.
type Views[T any] struct {
	mu        sync.Mutex
	snapshots map[string]*Snapshot[T]
}

func NewViews[T any]() *Views[T] {
	return &Views[T]{snapshots: make(map[string]*Snapshot[T])}
}

// For returns the snapshot owned by the session, creating it on first use.
func (v *Views[T]) For(sessionID string) *Snapshot[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	s, ok := v.snapshots[sessionID]
	if !ok {
		s = New[T]()
		v.snapshots[sessionID] = s
	}
	return s
}

// Drop discards the session's snapshot.
func (v *Views[T]) Drop(sessionID string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.snapshots, sessionID)
}
