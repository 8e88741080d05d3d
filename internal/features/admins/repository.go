package admins

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

func (r *Repository) List(ctx context.Context, token string) ([]Admin, error) {
	raw, err := r.api.Do(ctx, http.MethodGet, "/auth/admins", nil, token)
	if err != nil {
		return nil, err
	}
	items, err := apiclient.DecodeList[apiAdmin](raw, "admins")
	if err != nil {
		return nil, err
	}

	out := make([]Admin, 0, len(items))
	for _, item := range items {
		out = append(out, item.toAdmin())
	}
	return out, nil
}

// Create registers a new admin. The created record is returned when the API echoes it.
func (r *Repository) Create(ctx context.Context, token string, body registerAdminBody) (*Admin, error) {
	raw, err := r.api.Do(ctx, http.MethodPost, "/auth/register-admin", body, token)
	if err != nil {
		return nil, err
	}

	created, err := apiclient.DecodeObject[apiAdmin](raw, "admin", "user")
	if err != nil || created.MongoID.Or(created.ID) == "" {
		return nil, nil
	}
	admin := created.toAdmin()
	return &admin, nil
}

func (r *Repository) SetActive(ctx context.Context, token, id string, active bool) error {
	_, err := r.api.Do(ctx, http.MethodPut, "/auth/admin/"+url.PathEscape(id), map[string]bool{"isActive": active}, token)
	return err
}
