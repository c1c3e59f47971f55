package store

import (
	"sync"

	"github.com/pipetrack/pipetrack/internal/entity"
)

// Store is the canonical in-memory lead collection. All mutations commit
// under one lock, so readers never observe a half-written lead or a partial
// batch. Subscribers are notified after each committed mutation.
type Store struct {
	mu          sync.RWMutex
	leads       map[string]entity.Lead
	order       []string // insertion order of ids, refreshed by ReplaceAll
	subscribers []func()
}

func New() *Store {
	return &Store{
		leads: make(map[string]entity.Lead),
	}
}

// ReplaceAll swaps the entire collection, used after a full refresh. The
// previous contents are discarded wholesale; deletions upstream are handled
// by never patching, always replacing.
func (s *Store) ReplaceAll(leads []entity.Lead) {
	s.mu.Lock()
	next := make(map[string]entity.Lead, len(leads))
	order := make([]string, 0, len(leads))
	for _, lead := range leads {
		if _, exists := next[lead.ID]; !exists {
			order = append(order, lead.ID)
		}
		next[lead.ID] = lead
	}
	s.leads = next
	s.order = order
	s.mu.Unlock()

	s.notify()
}

// Upsert inserts or overwrites one lead by id.
func (s *Store) Upsert(lead entity.Lead) {
	s.UpsertBatch([]entity.Lead{lead})
}

// UpsertBatch commits several leads as one atomic local update; bulk
// assignment relies on this to make "all ids succeed together" observable.
func (s *Store) UpsertBatch(leads []entity.Lead) {
	s.mu.Lock()
	for _, lead := range leads {
		if _, exists := s.leads[lead.ID]; !exists {
			s.order = append(s.order, lead.ID)
		}
		s.leads[lead.ID] = lead
	}
	s.mu.Unlock()

	s.notify()
}

func (s *Store) Get(id string) (entity.Lead, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lead, ok := s.leads[id]
	return lead, ok
}

// All returns a snapshot of every lead in insertion order. Callers own the
// returned slice.
func (s *Store) All() []entity.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Lead, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.leads[id])
	}
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.leads)
}

// Subscribe registers a callback invoked after every committed mutation.
// Callbacks run outside the lock and must not assume which mutation fired.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.RLock()
	subs := make([]func(), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.RUnlock()

	for _, fn := range subs {
		fn()
	}
}
