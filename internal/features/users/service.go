package users

import (
	"context"

	"github.com/xyz-asif/ecocheck-admin/internal/dashboard"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/optimistic"
	"github.com/xyz-asif/ecocheck-admin/internal/session"
)

// CacheName is the workspace collection holding users.
const CacheName = "users"

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Cache(ws *dashboard.Workspace) *optimistic.Collection[User] {
	return dashboard.CollectionOf(ws, CacheName, Key)
}

// Load returns the users cache, fetching it on first use or when refresh is set.
func (s *Service) Load(ctx context.Context, sess *session.Session, ws *dashboard.Workspace, refresh bool) (*optimistic.Collection[User], error) {
	cache := s.Cache(ws)
	err := dashboard.Load(ctx, cache, refresh, func(ctx context.Context) ([]User, error) {
		return s.repo.List(ctx, sess.Token)
	})
	return cache, err
}
