// Package cache provides the in-process tree cache keyed by scope key.
package cache

import (
	"sync"
	"time"

	"github.com/DerickDu/ks-backend/internal/domain"
)

// Entry is one cached tree build. Entries are owned by the Store and never
// aliased outward: Get and Put hand back deep copies, so a concurrent
// replacement can never mutate a tree a caller is still serializing.
type Entry struct {
	ScopeKey string
	Tree     []*domain.PathNode
	BuiltAt  time.Time
}

// Store maps scope keys to built trees. Entries are replaced atomically by
// Put and live until invalidated, or until they age out when a TTL is
// configured (ttl <= 0 disables expiry). The mutex covers only the map
// mutation itself; callers must never fetch rows or build trees while
// holding it, and they don't: the Store exposes no callback surface.
type Store struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]Entry

	now func() time.Time // overridable for tests
}

// New creates an empty store. ttl <= 0 means entries never expire.
func New(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[string]Entry),
		now:     time.Now,
	}
}

// Get returns the cached entry for the scope key. Expired entries read as
// absent; they are physically replaced only by the next Put. The returned
// tree is a copy the caller owns.
func (s *Store) Get(scopeKey string) (Entry, bool) {
	s.mu.RLock()
	e, ok := s.entries[scopeKey]
	s.mu.RUnlock()
	if !ok {
		return Entry{}, false
	}
	if s.ttl > 0 && s.now().Sub(e.BuiltAt) > s.ttl {
		return Entry{}, false
	}
	e.Tree = domain.CloneTree(e.Tree)
	return e, true
}

// Put stores a freshly built tree under the scope key, replacing any prior
// entry. The store keeps its own deep copy; the returned entry carries the
// caller's tree and the recorded build time.
func (s *Store) Put(scopeKey string, t []*domain.PathNode) Entry {
	builtAt := s.now()
	stored := Entry{ScopeKey: scopeKey, Tree: domain.CloneTree(t), BuiltAt: builtAt}

	s.mu.Lock()
	s.entries[scopeKey] = stored
	s.mu.Unlock()

	return Entry{ScopeKey: scopeKey, Tree: t, BuiltAt: builtAt}
}

// Invalidate removes the entry for the scope key; a subsequent Get returns
// absent.
func (s *Store) Invalidate(scopeKey string) {
	s.mu.Lock()
	delete(s.entries, scopeKey)
	s.mu.Unlock()
}

// Len reports the number of entries, including expired ones not yet
// replaced.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
