package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/response"
	"github.com/xyz-asif/ecocheck-admin/internal/session"
)

const (
	SessionCookie = "ecocheck_session"
	sessionKey    = "session"
)

// SessionConfig configures the session guard.
type SessionConfig struct {
	Store  session.Store
	Secure bool
	// OnEnd is told about sessions found expired so their workspace can be dropped.
	OnEnd func(id string)
}

// Session loads the session named by the cookie and rejects the request when
// there is none. Handlers read it back with CurrentSession.
func Session(cfg SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || id == "" {
			response.SessionExpired(c, "Please log in to continue")
			c.Abort()
			return
		}

		s, err := cfg.Store.Get(c.Request.Context(), id)
		if err != nil || s == nil {
			if cfg.OnEnd != nil {
				cfg.OnEnd(id)
			}
			ClearSessionCookie(c, cfg.Secure)
			response.SessionExpired(c, "Your session has expired. Please log in again.")
			c.Abort()
			return
		}

		c.Set(sessionKey, s)
		c.Set("email", s.Email)
		c.Set("role", string(s.Role))
		c.Next()
	}
}

// CurrentSession returns the session loaded by Session.
func CurrentSession(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok && s != nil
}

// RequireSuperAdmin hides superadmin-only sections from other roles. The API
// checks authorisation again; this only mirrors the navigation rules.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := CurrentSession(c)
		if !ok {
			response.SessionExpired(c, "Please log in to continue")
			c.Abort()
			return
		}
		if !s.Role.IsSuperAdmin() {
			response.Forbidden(c, "This section is only available to super admins", "FORBIDDEN")
			c.Abort()
			return
		}
		c.Next()
	}
}

func SetSessionCookie(c *gin.Context, s *session.Session, secure bool) {
	maxAge := int(s.ExpiresAt.Sub(s.CreatedAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, s.ID, maxAge, "/", "", secure, true)
}

func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", secure, true)
}
