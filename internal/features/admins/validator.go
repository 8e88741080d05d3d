package admins

import (
	"errors"
	"strings"

	"github.com/xyz-asif/ecocheck-admin/internal/pkg/validator"
	"github.com/xyz-asif/ecocheck-admin/internal/session"
)

var errInvalidRole = errors.New("Role must be admin or superadmin")

// ValidateCreate checks the add-admin form before anything is sent and
// returns the body to send.
func ValidateCreate(req CreateAdminRequest) (registerAdminBody, error) {
	body := registerAdminBody{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
		Location: strings.TrimSpace(req.Location),
		Role:     string(session.RoleAdmin),
	}

	if err := validator.Email(body.Email); err != nil {
		return body, err
	}
	if err := validator.PasswordPair(req.Password, req.ConfirmPassword); err != nil {
		return body, err
	}
	if !validator.IsStrongPassword(req.Password) {
		return body, validator.ErrPasswordWeak
	}
	if body.Location == "" {
		return body, validator.ErrLocationRequired
	}
	if req.Role != "" {
		role := session.ParseRole(req.Role)
		if role == session.RoleNone {
			return body, errInvalidRole
		}
		body.Role = string(role)
	}
	return body, nil
}
