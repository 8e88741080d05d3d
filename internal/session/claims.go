package session

import (
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/jwt"
)

// Claims are the display hints attached to a session. They come from the
// login response or the token payload and are never a security boundary.
type Claims struct {
	Role     Role   `json:"role"`
	Location string `json:"location,omitempty"`
}

// Explicit is what the login response said about the caller, if anything.
type Explicit struct {
	Role     string
	Location string
}

// ResolveClaims prefers explicit values and falls back to the unverified token
// payload field by field. A token that cannot be decoded contributes nothing.
func ResolveClaims(explicit Explicit, token string) Claims {
	role, location := explicit.Role, explicit.Location

	if role == "" || location == "" {
		if decoded, err := jwt.ExtractClaims(token); err == nil {
			if role == "" {
				role = decoded.Role
			}
			if location == "" {
				location = decoded.Location
			}
		}
	}

	return Claims{Role: ParseRole(role), Location: location}
}
