package dashboard

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/xyz-asif/ecocheck-admin/internal/pkg/metrics"
	"github.com/xyz-asif/ecocheck-admin/internal/session"
	apperrors "github.com/xyz-asif/ecocheck-admin/pkg/errors"
)

// Registry maps session ids to their workspaces.
type Registry struct {
	mu         sync.Mutex
	workspaces map[string]*Workspace
	metrics    *metrics.Metrics
}

func NewRegistry(m *metrics.Metrics) *Registry {
	return &Registry{
		workspaces: make(map[string]*Workspace),
		metrics:    m,
	}
}

// Workspace returns the workspace of sessionID, creating an empty one if needed.
func (r *Registry) Workspace(sessionID string) *Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ws, ok := r.workspaces[sessionID]; ok {
		return ws
	}
	ws := NewWorkspace(sessionID)
	ws.onRollback = func(resource string, _ error) { r.metrics.ObserveRollback(resource) }
	r.workspaces[sessionID] = ws
	return ws
}

// Drop discards the workspace of sessionID.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.workspaces, sessionID)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.workspaces)
}

// Sweep drops every workspace whose session is gone from store, expired
// sessions included. A store error other than a missing session keeps the
// workspace until the next sweep.
func (r *Registry) Sweep(ctx context.Context, store session.Store) int {
	r.mu.Lock()
	ids := make([]string, 0, len(r.workspaces))
	for id := range r.workspaces {
		ids = append(ids, id)
	}
	r.mu.Unlock()

	dropped := 0
	for _, id := range ids {
		if ctx.Err() != nil {
			break
		}
		if _, err := store.Get(ctx, id); errors.Is(err, apperrors.ErrSessionMissing) {
			r.Drop(id)
			dropped++
		}
	}
	return dropped
}

// StartCleanup runs Sweep against store every interval until ctx is done
func (r *Registry) StartCleanup(ctx context.Context, store session.Store, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.Sweep(ctx, store)
			}
		}
	}()
}
