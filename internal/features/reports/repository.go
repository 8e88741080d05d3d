package reports

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/xyz-asif/ecocheck-admin/internal/apiclient"
)

// Repository reads and writes reports through the EcoCheck API.
type Repository struct {
	api    *apiclient.Client
	photos PhotoResolver
}

func NewRepository(api *apiclient.Client, photos PhotoResolver) *Repository {
	return &Repository{api: api, photos: photos}
}

// List fetches every report visible to token, in server order.
func (r *Repository) List(ctx context.Context, token string) ([]Report, error) {
	raw, err := r.api.Do(ctx, http.MethodGet, "/reports", nil, token)
	if err != nil {
		return nil, err
	}
	items, err := apiclient.DecodeList[apiReport](raw, "reports")
	if err != nil {
		return nil, err
	}

	out := make([]Report, 0, len(items))
	for _, item := range items {
		out = append(out, item.toReport(r.photos))
	}
	return out, nil
}

// UpdateStatus sets the status of report id. The updated report is returned
// when the API echoes one; nil otherwise.
func (r *Repository) UpdateStatus(ctx context.Context, token, id string, status Status) (*Report, error) {
	path := fmt.Sprintf("/reports/%s/status", url.PathEscape(id))
	raw, err := r.api.Do(ctx, http.MethodPut, path, map[string]string{"status": string(status)}, token)
	if err != nil {
		return nil, err
	}

	echoed, err := apiclient.DecodeObject[apiReport](raw, "report")
	if err != nil || echoed.MongoID.Or(echoed.ID) == "" {
		return nil, nil
	}
	report := echoed.toReport(r.photos)
	return &report, nil
}
