// Package store keeps finished layouts behind a key-value interface. The
// optimizer itself is pure and holds no state; callers that want to cache,
// share, or replay results plug one of these in.
package store

import (
	"context"

	"github.com/gridfield/windplan/model"
)

// LayoutStore is a keyed store for finished layouts. Keys are run IDs chosen
// by the caller.
type LayoutStore interface {
	// Put stores or replaces the layout under runID.
	Put(ctx context.Context, runID string, layout model.Layout) error

	// Get returns the layout under runID; the bool reports whether it exists.
	Get(ctx context.Context, runID string) (model.Layout, bool, error)

	// ListRunIDs returns the IDs of all stored layouts.
	ListRunIDs(ctx context.Context) ([]string, error)

	// Delete removes the layout under runID. Deleting a missing ID is not
	// an error.
	Delete(ctx context.Context, runID string) error

	// Close releases any backing resources.
	Close() error
}

// EventType indicates what kind of change happened in a store.
type EventType int

const (
	EventLayoutStored EventType = iota
	EventLayoutDeleted
)

// Event is emitted to subscribers when a layout is stored or deleted.
type Event struct {
	Type   EventType
	RunID  string
	Layout model.Layout
}
