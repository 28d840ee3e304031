package store

import (
	"context"
	"sync"

	"github.com/gridfield/windplan/model"
)

// MemoryStore is an in-memory, thread-safe LayoutStore with change events.
type MemoryStore struct {
	mu      sync.RWMutex
	layouts map[string]model.Layout
	subs    []func(Event)
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		layouts: make(map[string]model.Layout),
	}
}

// Put stores or replaces the layout under runID and notifies subscribers.
func (s *MemoryStore) Put(_ context.Context, runID string, layout model.Layout) error {
	s.mu.Lock()
	s.layouts[runID] = layout
	subs := append([]func(Event){}, s.subs...)
	s.mu.Unlock()

	// Notify subscribers outside the lock to avoid deadlocks.
	event := Event{Type: EventLayoutStored, RunID: runID, Layout: layout}
	for _, sub := range subs {
		sub(event)
	}
	return nil
}

// Get returns the layout under runID, if present.
func (s *MemoryStore) Get(_ context.Context, runID string) (model.Layout, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	layout, ok := s.layouts[runID]
	return layout, ok, nil
}

// ListRunIDs returns a snapshot of all stored run IDs.
func (s *MemoryStore) ListRunIDs(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.layouts))
	for id := range s.layouts {
		ids = append(ids, id)
	}
	return ids, nil
}

// Delete removes the layout under runID and notifies subscribers if it
// existed.
func (s *MemoryStore) Delete(_ context.Context, runID string) error {
	s.mu.Lock()
	layout, existed := s.layouts[runID]
	delete(s.layouts, runID)
	subs := append([]func(Event){}, s.subs...)
	s.mu.Unlock()

	if !existed {
		return nil
	}
	event := Event{Type: EventLayoutDeleted, RunID: runID, Layout: layout}
	for _, sub := range subs {
		sub(event)
	}
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error { return nil }

// Subscribe registers a callback for store events. It returns an unsubscribe
// function.
func (s *MemoryStore) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
	idx := len(s.subs) - 1

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if idx < 0 || idx >= len(s.subs) {
			return
		}
		s.subs = append(s.subs[:idx], s.subs[idx+1:]...)
		idx = -1
	}
}

var _ LayoutStore = (*MemoryStore)(nil)
