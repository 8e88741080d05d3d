// Package optimistic implements the snapshot / apply / call / restore protocol
// used for every in-place edit the dashboard makes to a cached list.
package optimistic

import (
	"context"
	"sync"
	"time"

	apperrors "github.com/xyz-asif/ecocheck-admin/pkg/errors"
)

// Collection is the cached copy of one remote list. It is never authoritative:
// it holds the last successful fetch, possibly patched by in-flight mutations.
type Collection[T any] struct {
	name  string
	key   func(T) string
	clone func(T) T

	// mutating serialises mutations and reloads so that a restore can never
	// clobber state written after its snapshot was taken.
	mutating sync.Mutex

	mu       sync.RWMutex
	items    []T
	loaded   bool
	loadedAt time.Time

	onRollback func(name string, err error)
}

type Option[T any] func(*Collection[T])

// WithClone supplies a deep copy for records that hold reference types.
func WithClone[T any](clone func(T) T) Option[T] {
	return func(c *Collection[T]) { c.clone = clone }
}

// WithRollbackHook is called after every restore.
func WithRollbackHook[T any](fn func(name string, err error)) Option[T] {
	return func(c *Collection[T]) { c.onRollback = fn }
}

func NewCollection[T any](name string, key func(T) string, opts ...Option[T]) *Collection[T] {
	c := &Collection[T]{name: name, key: key}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Collection[T]) Name() string { return c.name }

// Replace installs a fresh fetch.
func (c *Collection[T]) Replace(items []T) {
	c.mutating.Lock()
	defer c.mutating.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = c.copyItems(items)
	c.loaded = true
	c.loadedAt = time.Now()
}

// Reset forgets the cache so the next view fetches again.
func (c *Collection[T]) Reset() {
	c.mutating.Lock()
	defer c.mutating.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.loaded = false
	c.loadedAt = time.Time{}
}

func (c *Collection[T]) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

func (c *Collection[T]) LoadedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadedAt
}

// Items returns a copy of the cached records in cache order.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.copyItems(c.items)
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Find returns a copy of the record with id.
func (c *Collection[T]) Find(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if c.key(item) == id {
			return c.copyItem(item), true
		}
	}
	var zero T
	return zero, false
}

// Append adds a record created remotely (e.g. a new admin) to the cache.
func (c *Collection[T]) Append(item T) {
	c.mutating.Lock()
	defer c.mutating.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, c.copyItem(item))
}

func (c *Collection[T]) snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.copyItems(c.items)
}

func (c *Collection[T]) restore(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
}

func (c *Collection[T]) update(id string, fn func(*T)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.key(c.items[i]) == id {
			fn(&c.items[i])
			return c.copyItem(c.items[i]), true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) copyItems(items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = c.copyItem(item)
	}
	return out
}

func (c *Collection[T]) copyItem(item T) T {
	if c.clone != nil {
		return c.clone(item)
	}
	return item
}

// Mutation describes one optimistic edit of the record with ID.
type Mutation[T any] struct {
	ID string
	// Apply edits the cached record in place. It must assign fields rather than
	// write through pointers shared with the snapshot unless a clone is configured.
	Apply func(*T)
	// Remote performs the server call. A non-nil record is offered to Merge.
	Remote func(ctx context.Context, optimistic T) (*T, error)
	// Merge folds server-owned fields (timestamps etc.) into the optimistic record.
	Merge func(local *T, server T)
}

// Run executes m against c:
//  1. snapshot the collection,
//  2. apply the edit in memory,
//  3. call Remote,
//  4. keep (and optionally merge) on success, or restore the snapshot on failure.
//
// On failure the returned record is the pre-mutation one and the error is Remote's.
// An unknown ID changes nothing and returns ErrNotFound without calling Remote.
func Run[T any](ctx context.Context, c *Collection[T], m Mutation[T]) (T, error) {
	c.mutating.Lock()
	defer c.mutating.Unlock()

	before, ok := c.Find(m.ID)
	if !ok {
		var zero T
		return zero, apperrors.ErrNotFound
	}

	snapshot := c.snapshot()
	applied, _ := c.update(m.ID, m.Apply)

	server, err := m.Remote(ctx, applied)
	if err != nil {
		c.restore(snapshot)
		if c.onRollback != nil {
			c.onRollback(c.name, err)
		}
		return before, err
	}

	if server != nil && m.Merge != nil {
		applied, _ = c.update(m.ID, func(local *T) { m.Merge(local, *server) })
	}
	return applied, nil
}
