package auth

import (
	"context"
	"net/http"

	"github.com/xyz-asif/ecocheck-admin/internal/apiclient"
)

type Repository struct {
	api *apiclient.Client
}

func NewRepository(api *apiclient.Client) *Repository {
	return &Repository{api: api}
}

// Login exchanges credentials for a token.
func (r *Repository) Login(ctx context.Context, email, password string) (loginResult, error) {
	raw, err := r.api.Do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	if err != nil {
		return loginResult{}, err
	}

	res, err := apiclient.DecodeObject[loginResult](raw)
	if err != nil {
		return loginResult{}, err
	}
	if res.Token == "" {
		return loginResult{}, &apiclient.Error{Kind: apiclient.KindServer, Message: "Login response did not include a token"}
	}
	return res, nil
}

func (r *Repository) Register(ctx context.Context, name, email, password string) error {
	_, err := r.api.Do(ctx, http.MethodPost, "/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, "")
	return err
}

// Logout records the logout time server side.
func (r *Repository) Logout(ctx context.Context, token string) error {
	_, err := r.api.Do(ctx, http.MethodPost, "/auth/logout", nil, token)
	return err
}
