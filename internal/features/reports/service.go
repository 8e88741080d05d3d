package reports

import (
	"context"

	"github.com/xyz-asif/ecocheck-admin/internal/dashboard"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/optimistic"
	"github.com/xyz-asif/ecocheck-admin/internal/session"
)

// CacheName is the workspace collection holding reports.
const CacheName = "reports"

// Service gives other features access to the reports cache of a workspace.
type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Cache(ws *dashboard.Workspace) *optimistic.Collection[Report] {
	return dashboard.CollectionOf(ws, CacheName, Key)
}

// Load returns the reports cache, fetching it on first use or when refresh is set.
func (s *Service) Load(ctx context.Context, sess *session.Session, ws *dashboard.Workspace, refresh bool) (*optimistic.Collection[Report], error) {
	cache := s.Cache(ws)
	err := dashboard.Load(ctx, cache, refresh, func(ctx context.Context) ([]Report, error) {
		return s.repo.List(ctx, sess.Token)
	})
	return cache, err
}

// CountByUser counts reports per reporting user id.
func CountByUser(items []Report) map[string]int {
	counts := make(map[string]int)
	for _, r := range items {
		if r.User != "" {
			counts[r.User]++
		}
	}
	return counts
}
