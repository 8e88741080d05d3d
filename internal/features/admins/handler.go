package admins

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/ecocheck-admin/internal/apiclient"
	"github.com/xyz-asif/ecocheck-admin/internal/dashboard"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/audit"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/optimistic"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/prompt"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/response"
	"github.com/xyz-asif/ecocheck-admin/internal/session"
	apperrors "github.com/xyz-asif/ecocheck-admin/pkg/errors"
)

// CacheName is the workspace collection holding admins.
const CacheName = "admins"

const feature = "Admin management"

type Handler struct {
	env  *dashboard.Env
	repo *Repository
}

func NewHandler(env *dashboard.Env, repo *Repository) *Handler {
	return &Handler{env: env, repo: repo}
}

func Cache(ws *dashboard.Workspace) *optimistic.Collection[Admin] {
	return dashboard.CollectionOf(ws, CacheName, Key)
}

// ListAdmins godoc
// @Summary List admins
// @Description Super admins only. Older deployments without admin management return an empty, degraded list.
// @Tags admins
// @Produce json
// @Param search query string false "Search over email and location"
// @Param sort query string false "newest | oldest"
// @Param page query int false "Page number"
// @Param refresh query bool false "Fetch again from the API"
// @Success 200 {object} response.APIResponse{data=dashboard.ListView[Admin]}
// @Failure 401 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Failure 502 {object} response.APIResponse
// @Router /admins [get]
func (h *Handler) List(c *gin.Context) {
	s, ws, ok := h.env.Begin(c)
	if !ok {
		return
	}

	sortKey := c.Query("sort")
	if sortKey != "" && Sorter.Lookup(sortKey) == nil {
		response.ValidationError(c, fmt.Sprintf("Unknown sort %q", sortKey), "INVALID_SORT")
		return
	}
	page, _ := strconv.Atoi(c.Query("page"))
	q := ws.NextQuery(CacheName, c.Query("search"), sortKey, page)

	cache := Cache(ws)
	err := dashboard.Load(c.Request.Context(), cache, c.Query("refresh") == "true", func(ctx context.Context) ([]Admin, error) {
		return h.repo.List(ctx, s.Token)
	})
	if err != nil {
		if capability := h.env.ListFailure(c, s, feature, err); capability != nil {
			response.Success(c, dashboard.Unavailable(q, Sorter, *capability))
		}
		return
	}

	lv, q := dashboard.Derive(cache.Items(), q, Fields, Sorter)
	ws.SetQuery(CacheName, q)
	response.Success(c, lv)
}

// CreateAdmin godoc
// @Summary Create an admin
// @Description Super admins only. The form is validated before anything is sent to the API.
// @Tags admins
// @Accept json
// @Produce json
// @Param request body CreateAdminRequest true "New admin"
// @Success 201 {object} response.APIResponse{data=prompt.Notification}
// @Failure 401 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Failure 502 {object} response.APIResponse
// @Router /admins [post]
func (h *Handler) Create(c *gin.Context) {
	s, ws, ok := h.env.Begin(c)
	if !ok {
		return
	}

	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}
	body, err := ValidateCreate(req)
	if err != nil {
		response.ValidationError(c, err.Error(), "VALIDATION_ERROR")
		return
	}

	created, err := h.repo.Create(c.Request.Context(), s.Token, body)
	if err != nil {
		h.createFailed(c, s, ws, body, err)
		return
	}

	cache := Cache(ws)
	switch {
	case created != nil && cache.Loaded():
		cache.Append(*created)
	case created == nil:
		// nothing echoed back: fetch the list again on next view
		cache.Reset()
	default:
		// list not loaded yet; the first view pulls it with the new admin
	}
	h.env.Record(c.Request.Context(), audit.Event{
		Resource: CacheName,
		RecordID: body.Email,
		Outcome:  audit.OutcomeCreated,
		Actor:    s.Email,
	})

	n := ws.Notifications.Push(prompt.Success("Admin created", fmt.Sprintf("%s can now log in to the dashboard.", body.Email)))
	response.Created(c, n, n.Message)
}

func (h *Handler) createFailed(c *gin.Context, s *session.Session, ws *dashboard.Workspace, body registerAdminBody, err error) {
	if errors.Is(err, apperrors.ErrAuthExpired) {
		h.env.EndSession(c, s)
		return
	}
	h.env.Record(c.Request.Context(), audit.Event{
		Resource: CacheName,
		RecordID: body.Email,
		Outcome:  audit.OutcomeFailed,
		Actor:    s.Email,
		Error:    err.Error(),
	})

	message := apiclient.MessageOf(err, "Failed to create admin")
	status := http.StatusBadGateway
	switch apiclient.KindOf(err) {
	case apiclient.KindForbidden:
		status = http.StatusForbidden
	case apiclient.KindNotFound:
		status = http.StatusNotFound
		message = "Admin creation is not supported by this server deployment."
	}

	n := ws.Notifications.Push(prompt.Failure("Could not create admin", message))
	response.ErrorWithData(c, status, message, n, apiclient.KindOf(err).String())
}

// RequestActiveChange godoc
// @Summary Ask to activate or deactivate an admin
// @Tags admins
// @Accept json
// @Produce json
// @Param id path string true "Admin ID"
// @Param request body SetActiveRequest true "Target state"
// @Success 200 {object} response.APIResponse{data=prompt.Prompt}
// @Failure 404 {object} response.APIResponse
// @Router /admins/{id}/active [post]
func (h *Handler) RequestActiveChange(c *gin.Context) {
	s, ws, ok := h.env.Begin(c)
	if !ok {
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	cache := Cache(ws)
	admin, found := cache.Find(c.Param("id"))
	if !found {
		response.NotFound(c, "Admin not found", "ADMIN_NOT_FOUND")
		return
	}
	if admin.Email == s.Email && !*req.IsActive {
		response.ValidationError(c, "You cannot deactivate your own account", "SELF_DEACTIVATION")
		return
	}

	active := *req.IsActive
	p := prompt.Prompt{
		Title:        "Deactivate admin",
		Message:      fmt.Sprintf("Deactivate %s? They will lose access to the dashboard.", admin.Email),
		ConfirmLabel: "Deactivate",
		Severity:     prompt.SeverityDanger,
	}
	state := "deactivated"
	if active {
		p = prompt.Prompt{
			Title:        "Activate admin",
			Message:      fmt.Sprintf("Activate %s? They will regain access to the dashboard.", admin.Email),
			ConfirmLabel: "Activate",
			Severity:     prompt.SeveritySuccess,
		}
		state = "activated"
	}

	p = ws.Gate.Ask(p, func(ctx context.Context) (prompt.Notification, error) {
		return dashboard.Apply(ctx, h.env, s, cache, dashboard.Change[Admin]{
			Resource: CacheName,
			Field:    "isActive",
			Value:    active,
			Mutation: optimistic.Mutation[Admin]{
				ID:    admin.ID,
				Apply: func(a *Admin) { a.IsActive = active },
				Remote: func(ctx context.Context, _ Admin) (*Admin, error) {
					return nil, h.repo.SetActive(ctx, s.Token, admin.ID, active)
				},
			},
			SuccessTitle:   "Admin updated",
			SuccessMessage: fmt.Sprintf("%s has been %s.", admin.Email, state),
			FailureTitle:   "Update failed",
			Fallback:       "Failed to update admin status. Reverting...",
			Unsupported:    "Admin activation is not supported by this server deployment.",
		})
	})
	response.Success(c, p, "Confirmation required")
}
