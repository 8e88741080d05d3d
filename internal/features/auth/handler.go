package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/ecocheck-admin/internal/apiclient"
	"github.com/xyz-asif/ecocheck-admin/internal/dashboard"
	"github.com/xyz-asif/ecocheck-admin/internal/middleware"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/ratelimit"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/response"
	"github.com/xyz-asif/ecocheck-admin/internal/session"
)

type Handler struct {
	env        *dashboard.Env
	repo       *Repository
	limiter    *ratelimit.RateLimiter
	sessionTTL time.Duration
}

func NewHandler(env *dashboard.Env, repo *Repository, limiter *ratelimit.RateLimiter, sessionTTL time.Duration) *Handler {
	return &Handler{env: env, repo: repo, limiter: limiter, sessionTTL: sessionTTL}
}

// Login godoc
// @Summary Log in
// @Description Exchanges credentials for an API token, stores it in a server-side session and sets the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} response.APIResponse{data=SessionResponse}
// @Failure 401 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Failure 429 {object} response.APIResponse
// @Failure 502 {object} response.APIResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}
	if err := ValidateLogin(&req); err != nil {
		response.ValidationError(c, err.Error(), "VALIDATION_ERROR")
		return
	}

	res, err := h.repo.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.env.Log.Info("login failed for %s: %v", req.Email, err)
		status, message := failureStatus(err, "Login failed")
		response.Error(c, status, message, "LOGIN_FAILED")
		return
	}

	email := req.Email
	if res.User != nil && res.User.Email != "" {
		email = res.User.Email
	}
	s := session.New(res.Token, session.ResolveClaims(res.explicit(), res.Token), email, h.sessionTTL)
	if err := h.env.Store.Save(c.Request.Context(), s); err != nil {
		h.env.Log.Error("failed to save session for %s: %v", email, err)
		response.InternalServerError(c, "Could not start a session. Please try again.")
		return
	}
	if h.limiter != nil {
		h.limiter.Reset(c.ClientIP())
	}

	h.env.Log.Info("%s logged in as %q", email, s.Role)
	middleware.SetSessionCookie(c, s, h.env.CookieSecure)
	response.Success(c, newSessionResponse(s), "Login successful")
}

// Register godoc
// @Summary Register an account
// @Description Validates the form (including password confirmation) before calling the API
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "New account"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Failure 502 {object} response.APIResponse
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}
	if err := ValidateRegister(&req); err != nil {
		response.ValidationError(c, err.Error(), "VALIDATION_ERROR")
		return
	}

	if err := h.repo.Register(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		status, message := failureStatus(err, "Registration failed")
		response.Error(c, status, message, "REGISTER_FAILED")
		return
	}
	response.Created(c, nil, "Registration successful. You can now log in.")
}

// Logout godoc
// @Summary Log out
// @Description Records the logout with the API and destroys the session. A failed API call never blocks logging out.
// @Tags auth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Router /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		response.SessionExpired(c, "Please log in to continue")
		return
	}

	if err := h.repo.Logout(c.Request.Context(), s.Token); err != nil {
		h.env.Log.Warn("logout not recorded for %s: %v", s.Email, err)
	}

	// The session is gone even if the request was cancelled.
	if err := h.env.Store.Delete(context.WithoutCancel(c.Request.Context()), s.ID); err != nil {
		h.env.Log.Warn("failed to delete session %s: %v", s.ID, err)
	}
	h.env.Registry.Drop(s.ID)
	middleware.ClearSessionCookie(c, h.env.CookieSecure)
	response.Success(c, gin.H{"redirect": "/login"}, "Logged out")
}

// GetSession godoc
// @Summary Current session
// @Description Role, location and which sections the UI should offer. Role claims are display hints; the API enforces access.
// @Tags auth
// @Produce json
// @Success 200 {object} response.APIResponse{data=SessionResponse}
// @Failure 401 {object} response.APIResponse
// @Router /session [get]
func (h *Handler) GetSession(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		response.SessionExpired(c, "Please log in to continue")
		return
	}
	response.Success(c, newSessionResponse(s))
}

// failureStatus maps an API failure on an unauthenticated call to the status
// the browser sees, with the server's message when it sent one.
func failureStatus(err error, fallback string) (int, string) {
	message := apiclient.MessageOf(err, fallback)
	switch apiclient.KindOf(err) {
	case apiclient.KindNetwork:
		return http.StatusBadGateway, message
	case apiclient.KindAuthExpired:
		return http.StatusUnauthorized, message
	case apiclient.KindForbidden:
		return http.StatusForbidden, message
	case apiclient.KindServer:
		var apiErr *apiclient.Error
		if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
			return http.StatusBadRequest, message
		}
		return http.StatusBadGateway, message
	default:
		return http.StatusBadRequest, message
	}
}
