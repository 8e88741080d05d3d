// Package dashboard composes the per-login state every dashboard view works
// from: cached lists, the query each list is showing, pending confirmations
// and notifications.
package dashboard

import (
	"context"
	"sync"

	"github.com/xyz-asif/ecocheck-admin/internal/pkg/optimistic"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/pagination"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/prompt"
)

// Workspace is the in-memory state of one session. It is discarded with the
// session and never persisted.
type Workspace struct {
	SessionID     string
	Gate          *prompt.Gate
	Notifications *prompt.Center

	onRollback func(resource string, err error)

	mu          sync.Mutex
	collections map[string]any
	queries     map[string]pagination.Query
}

func NewWorkspace(sessionID string) *Workspace {
	return &Workspace{
		SessionID:     sessionID,
		Gate:          prompt.NewGate(),
		Notifications: prompt.NewCenter(),
		collections:   make(map[string]any),
		queries:       make(map[string]pagination.Query),
	}
}

// CollectionOf returns the workspace's cache named name, creating it on first
// use. Every caller of a given name must use the same T.
func CollectionOf[T any](ws *Workspace, name string, key func(T) string, opts ...optimistic.Option[T]) *optimistic.Collection[T] {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if c, ok := ws.collections[name]; ok {
		return c.(*optimistic.Collection[T])
	}
	if ws.onRollback != nil {
		opts = append(opts, optimistic.WithRollbackHook[T](ws.onRollback))
	}
	c := optimistic.NewCollection(name, key, opts...)
	ws.collections[name] = c
	return c
}

// Query returns the stored query of list.
func (ws *Workspace) Query(list string) pagination.Query {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	q, ok := ws.queries[list]
	if !ok {
		q = pagination.Query{Page: 1}
	}
	return q
}

// NextQuery folds a request into the stored query of list and stores the result.
func (ws *Workspace) NextQuery(list, search, sort string, page int) pagination.Query {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	q, ok := ws.queries[list]
	if !ok {
		q = pagination.Query{Page: 1}
	}
	q = q.Next(search, sort, page)
	ws.queries[list] = q
	return q
}

// SetQuery stores q as given, e.g. after the page was clamped.
func (ws *Workspace) SetQuery(list string, q pagination.Query) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.queries[list] = q
}

// Load fills c from fetch the first time a list is viewed, or again when refresh is set.
// A failed fetch leaves the cache as it was.
func Load[T any](ctx context.Context, c *optimistic.Collection[T], refresh bool, fetch func(ctx context.Context) ([]T, error)) error {
	if c.Loaded() && !refresh {
		return nil
	}
	items, err := fetch(ctx)
	if err != nil {
		return err
	}
	c.Replace(items)
	return nil
}
