package auth

import (
	"time"

	"github.com/xyz-asif/ecocheck-admin/internal/session"
)

type LoginRequest struct {
	Email    string `json:"email" example:"admin@ecocheck.ph"`
	Password string `json:"password" example:"secret123"`
}

type RegisterRequest struct {
	Name            string `json:"name" example:"Juan Dela Cruz"`
	Email           string `json:"email" example:"juan@ecocheck.ph"`
	Password        string `json:"password" example:"secret123"`
	ConfirmPassword string `json:"confirmPassword" example:"secret123"`
}

// SessionResponse describes the logged-in admin to the UI.
type SessionResponse struct {
	Email      string             `json:"email,omitempty"`
	Role       session.Role       `json:"role"`
	Location   string             `json:"location,omitempty"`
	Navigation session.Navigation `json:"navigation"`
	ExpiresAt  time.Time          `json:"expiresAt"`
}

func newSessionResponse(s *session.Session) SessionResponse {
	return SessionResponse{
		Email:      s.Email,
		Role:       s.Role,
		Location:   s.Location,
		Navigation: session.NavigationFor(s.Role),
		ExpiresAt:  s.ExpiresAt,
	}
}

// loginResult is the API's login answer. The role has been sent under
// several names over time.
type loginResult struct {
	Token    string `json:"token"`
	Role     string `json:"role"`
	UserRole string `json:"userRole"`
	Location string `json:"location"`
	User     *struct {
		Email    string `json:"email"`
		Role     string `json:"role"`
		Location string `json:"location"`
	} `json:"user"`
}

// explicit returns what the login response itself said about the caller.
func (r loginResult) explicit() session.Explicit {
	e := session.Explicit{Role: r.Role, Location: r.Location}
	if e.Role == "" {
		e.Role = r.UserRole
	}
	if r.User != nil {
		if e.Role == "" {
			e.Role = r.User.Role
		}
		if e.Location == "" {
			e.Location = r.User.Location
		}
	}
	return e
}
