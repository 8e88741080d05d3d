package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xyz-asif/ecocheck-admin/internal/dashboard/dashboardtest"
	"github.com/xyz-asif/ecocheck-admin/internal/middleware"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/ratelimit"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/validator"
	"github.com/xyz-asif/ecocheck-admin/internal/session"
)

func setup(t *testing.T, limiter *ratelimit.RateLimiter) *dashboardtest.Harness {
	t.Helper()
	h := dashboardtest.New(t, session.RoleAdmin)
	RegisterRoutes(h.API, h.Env, NewRepository(h.Env.API), limiter, time.Hour, h.Guard)
	return h
}

func signed(t *testing.T, claims jwtlib.MapClaims) string {
	t.Helper()
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("not-our-secret"))
	require.NoError(t, err)
	return token
}

func post(h *dashboardtest.Harness, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.Router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			require.True(t, c.HttpOnly)
			return c
		}
	}
	t.Fatalf("no session cookie in %v", w.Header())
	return nil
}

func currentSession(t *testing.T, h *dashboardtest.Harness, cookie *http.Cookie) (int, SessionResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	h.Router.ServeHTTP(w, req)
	var out SessionResponse
	if w.Code == http.StatusOK {
		dashboardtest.Decode(t, w, &out)
	}
	return w.Code, out
}

func TestLogin_RoleResolution(t *testing.T) {
	tests := []struct {
		name     string
		reply    func(t *testing.T) gin.H
		role     session.Role
		location string
		admins   bool
	}{
		{
			name: "explicit role wins over the token",
			reply: func(t *testing.T) gin.H {
				return gin.H{"token": signed(t, jwtlib.MapClaims{"role": "admin"}), "role": "SUPERADMIN", "location": "Manila"}
			},
			role: session.RoleSuperAdmin, location: "Manila", admins: true,
		},
		{
			name: "nested user role",
			reply: func(t *testing.T) gin.H {
				return gin.H{"token": "opaque", "user": gin.H{"role": "admin", "location": "Cebu", "email": "Admin@EcoCheck.ph"}}
			},
			role: session.RoleAdmin, location: "Cebu",
		},
		{
			name: "token userType when the response has no role",
			reply: func(t *testing.T) gin.H {
				return gin.H{"token": signed(t, jwtlib.MapClaims{"userType": "super_admin", "location": "Davao"})}
			},
			role: session.RoleSuperAdmin, location: "Davao", admins: true,
		},
		{
			name: "undecodable token means no role",
			reply: func(t *testing.T) gin.H {
				return gin.H{"token": "not.a.jwt"}
			},
			role: session.RoleNone,
		},
		{
			name: "role spelling is case sensitive",
			reply: func(t *testing.T) gin.H {
				return gin.H{"token": "opaque", "userRole": "SuperAdmin"}
			},
			role: session.RoleNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := setup(t, nil)
			h.Upstream.POST("/auth/login", func(c *gin.Context) {
				c.JSON(http.StatusOK, tt.reply(t))
			})

			w := post(h, "/api/v1/auth/login", LoginRequest{Email: "admin@ecocheck.ph", Password: "secret123"})
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			code, s := currentSession(t, h, sessionCookie(t, w))
			require.Equal(t, http.StatusOK, code)
			assert.Equal(t, tt.role, s.Role)
			assert.Equal(t, tt.location, s.Location)
			assert.Equal(t, tt.admins, s.Navigation.Admins)
			assert.Equal(t, tt.admins, s.Navigation.LoginLogs)
			assert.True(t, s.Navigation.Reports)
		})
	}
}

func TestLogin_ValidationBeforeNetwork(t *testing.T) {
	h := setup(t, nil)
	called := false
	h.Upstream.POST("/auth/login", func(c *gin.Context) { called = true })

	w := post(h, "/api/v1/auth/login", LoginRequest{Email: "admin@ecocheck.ph"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Equal(t, validator.ErrPasswordRequired.Error(), dashboardtest.Decode(t, w, nil).Message)

	w = post(h, "/api/v1/auth/login", LoginRequest{Email: "nope", Password: "x"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.False(t, called)
}

func TestLogin_BadCredentials(t *testing.T) {
	h := setup(t, nil)
	h.Upstream.POST("/auth/login", func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
	})

	w := post(h, "/api/v1/auth/login", LoginRequest{Email: "admin@ecocheck.ph", Password: "wrong"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Invalid credentials", dashboardtest.Decode(t, w, nil).Message)
	require.Empty(t, w.Result().Cookies())
}

func TestLogin_MissingToken(t *testing.T) {
	h := setup(t, nil)
	h.Upstream.POST("/auth/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	w := post(h, "/api/v1/auth/login", LoginRequest{Email: "admin@ecocheck.ph", Password: "secret123"})
	require.Equal(t, http.StatusBadGateway, w.Code)
}

func TestLogin_RateLimited(t *testing.T) {
	h := setup(t, ratelimit.New(2, time.Minute))
	h.Upstream.POST("/auth/login", func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
	})

	codes := []int{}
	for i := 0; i < 3; i++ {
		codes = append(codes, post(h, "/api/v1/auth/login", LoginRequest{Email: "admin@ecocheck.ph", Password: "wrong"}).Code)
	}
	require.Equal(t, []int{401, 401, 429}, codes)
}

func TestRegister(t *testing.T) {
	h := setup(t, nil)
	var sent map[string]string
	h.Upstream.POST("/auth/register", func(c *gin.Context) {
		require.NoError(t, c.ShouldBindJSON(&sent))
		c.JSON(http.StatusCreated, gin.H{"success": true})
	})

	w := post(h, "/api/v1/auth/register", RegisterRequest{Name: "Juan", Email: "juan@ecocheck.ph", Password: "secret123", ConfirmPassword: "secret321"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Equal(t, validator.ErrPasswordMismatch.Error(), dashboardtest.Decode(t, w, nil).Message)
	require.Nil(t, sent)

	w = post(h, "/api/v1/auth/register", RegisterRequest{Name: "Juan", Email: "juan@ecocheck.ph", Password: "secret123", ConfirmPassword: "secret123"})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, map[string]string{"name": "Juan", "email": "juan@ecocheck.ph", "password": "secret123"}, sent)
}

func TestLogout_NeverBlockedByTheAPI(t *testing.T) {
	h := setup(t, nil)
	var auth string
	h.Upstream.POST("/auth/logout", func(c *gin.Context) {
		auth = dashboardtest.Bearer(c)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "boom"})
	})
	h.Workspace()
	require.Equal(t, 1, h.Env.Registry.Len())

	w := h.Do(http.MethodPost, "/api/v1/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Bearer test-token", auth)
	require.Equal(t, 0, h.Env.Registry.Len())

	w = h.Do(http.MethodGet, "/api/v1/session", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
