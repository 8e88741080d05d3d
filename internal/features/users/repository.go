package users

import (
	"context"
	"net/http"
	"net/url"

	"github.com/xyz-asif/ecocheck-admin/internal/apiclient"
)

type Repository struct {
	api *apiclient.Client
}

func NewRepository(api *apiclient.Client) *Repository {
	return &Repository{api: api}
}

func (r *Repository) List(ctx context.Context, token string) ([]User, error) {
	raw, err := r.api.Do(ctx, http.MethodGet, "/users", nil, token)
	if err != nil {
		return nil, err
	}
	items, err := apiclient.DecodeList[apiUser](raw, "users")
	if err != nil {
		return nil, err
	}

	out := make([]User, 0, len(items))
	for _, item := range items {
		out = append(out, item.toUser())
	}
	return out, nil
}

// SetActive activates or deactivates user id.
func (r *Repository) SetActive(ctx context.Context, token, id string, active bool) error {
	_, err := r.api.Do(ctx, http.MethodPut, "/users/"+url.PathEscape(id), map[string]bool{"isActive": active}, token)
	return err
}
