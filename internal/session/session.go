// Package session owns the dashboard login: the opaque API token and the
// role/location hints that decide which parts of the dashboard are shown.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Role is the canonical form of the role claim.
type Role string

const (
	RoleNone       Role = ""
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// ParseRole normalises the spellings the API has used. Matching is case
// sensitive; anything unrecognised is RoleNone.
func ParseRole(raw string) Role {
	switch raw {
	case "superadmin", "super_admin", "SUPERADMIN":
		return RoleSuperAdmin
	case "admin":
		return RoleAdmin
	default:
		return RoleNone
	}
}

func (r Role) IsSuperAdmin() bool { return r == RoleSuperAdmin }

// Session is created at login and destroyed at logout or when the API
// answers 401. Token is opaque to the dashboard.
type Session struct {
	ID        string    `json:"id" bson:"_id"`
	Token     string    `json:"-" bson:"token"`
	Role      Role      `json:"role" bson:"role"`
	Location  string    `json:"location,omitempty" bson:"location,omitempty"`
	Email     string    `json:"email,omitempty" bson:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt" bson:"expiresAt"`
}

func New(token string, claims Claims, email string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		Token:     token,
		Role:      claims.Role,
		Location:  claims.Location,
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Store persists sessions between requests.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// Navigation is which sections the UI should offer for a role.
type Navigation struct {
	Reports   bool `json:"reports"`
	Users     bool `json:"users"`
	Admins    bool `json:"admins"`
	LoginLogs bool `json:"loginLogs"`
}

func NavigationFor(r Role) Navigation {
	return Navigation{
		Reports:   true,
		Users:     true,
		Admins:    r.IsSuperAdmin(),
		LoginLogs: r.IsSuperAdmin(),
	}
}
