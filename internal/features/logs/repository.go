package logs

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/xyz-asif/ecocheck-admin/internal/apiclient"
)

// Limit is how many recent logins are fetched.
const Limit = 100

type Repository struct {
	api *apiclient.Client
	loc *time.Location
}

// NewRepository formats times in loc; nil means the server's local zone.
func NewRepository(api *apiclient.Client, loc *time.Location) *Repository {
	if loc == nil {
		loc = time.Local
	}
	return &Repository{api: api, loc: loc}
}

func (r *Repository) List(ctx context.Context, token string) ([]Entry, error) {
	raw, err := r.api.Do(ctx, http.MethodGet, fmt.Sprintf("/auth/login-logs?limit=%d", Limit), nil, token)
	if err != nil {
		return nil, err
	}
	items, err := apiclient.DecodeList[apiEntry](raw, "logs")
	if err != nil {
		return nil, err
	}

	out := make([]Entry, 0, len(items))
	for _, item := range items {
		out = append(out, item.toEntry(r.loc))
	}
	return out, nil
}
