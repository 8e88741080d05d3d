package users

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/ecocheck-admin/internal/dashboard"
	"github.com/xyz-asif/ecocheck-admin/internal/features/reports"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/optimistic"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/prompt"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/response"
	"github.com/xyz-asif/ecocheck-admin/internal/session"
	apperrors "github.com/xyz-asif/ecocheck-admin/pkg/errors"
)

type Handler struct {
	env     *dashboard.Env
	repo    *Repository
	service *Service
	reports *reports.Service
}

func NewHandler(env *dashboard.Env, repo *Repository, service *Service, reportService *reports.Service) *Handler {
	return &Handler{env: env, repo: repo, service: service, reports: reportService}
}

// ListUsers godoc
// @Summary List users
// @Description Filtered, sorted and paginated view of registered users with the number of reports each filed
// @Tags users
// @Produce json
// @Param search query string false "Search over full name, email and contact number"
// @Param sort query string false "reportsHigh | reportsLow | pointsHigh | pointsLow"
// @Param page query int false "Page number"
// @Param refresh query bool false "Fetch again from the API"
// @Success 200 {object} response.APIResponse{data=dashboard.ListView[Row]}
// @Failure 401 {object} response.APIResponse
// @Failure 502 {object} response.APIResponse
// @Router /users [get]
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
	refresh := c.Query("refresh") == "true"

	cache, err := h.service.Load(c.Request.Context(), s, ws, refresh)
	if err != nil {
		if capability := h.env.ListFailure(c, s, "Users", err); capability != nil {
			response.Success(c, dashboard.Unavailable(q, Sorter, *capability))
		}
		return
	}

	// Report counts come from the reports cache. Without it every count is zero.
	counts := map[string]int{}
	reportCache, err := h.reports.Load(c.Request.Context(), s, ws, refresh)
	switch {
	case errors.Is(err, apperrors.ErrAuthExpired):
		h.env.EndSession(c, s)
		return
	case err != nil:
		h.env.Log.Warn("report counts unavailable for %s: %v", s.Email, err)
	default:
		counts = reports.CountByUser(reportCache.Items())
	}

	lv, q := dashboard.Derive(Rows(cache.Items(), counts), q, Fields, Sorter)
	ws.SetQuery(CacheName, q)
	response.Success(c, lv)
}

// RequestActiveChange godoc
// @Summary Ask to activate or deactivate a user
// @Description Registers the toggle behind a confirmation prompt
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body SetActiveRequest true "Target state"
// @Success 200 {object} response.APIResponse{data=prompt.Prompt}
// @Failure 404 {object} response.APIResponse
// @Router /users/{id}/active [post]
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

	cache := h.service.Cache(ws)
	user, found := cache.Find(c.Param("id"))
	if !found {
		response.NotFound(c, "User not found", "USER_NOT_FOUND")
		return
	}

	active := *req.IsActive
	p := ws.Gate.Ask(activationPrompt(user.FullName, active), h.setActive(s, cache, user, active))
	response.Success(c, p, "Confirmation required")
}

func activationPrompt(name string, active bool) prompt.Prompt {
	if active {
		return prompt.Prompt{
			Title:        "Activate user",
			Message:      fmt.Sprintf("Activate %s? They will be able to log in and submit reports again.", name),
			ConfirmLabel: "Activate",
			Severity:     prompt.SeveritySuccess,
		}
	}
	return prompt.Prompt{
		Title:        "Deactivate user",
		Message:      fmt.Sprintf("Deactivate %s? They will no longer be able to log in.", name),
		ConfirmLabel: "Deactivate",
		Severity:     prompt.SeverityDanger,
	}
}

func (h *Handler) setActive(s *session.Session, cache *optimistic.Collection[User], user User, active bool) prompt.Action {
	state := "deactivated"
	if active {
		state = "activated"
	}
	return func(ctx context.Context) (prompt.Notification, error) {
		return dashboard.Apply(ctx, h.env, s, cache, dashboard.Change[User]{
			Resource: CacheName,
			Field:    "isActive",
			Value:    active,
			Mutation: optimistic.Mutation[User]{
				ID:    user.ID,
				Apply: func(u *User) { u.IsActive = active },
				Remote: func(ctx context.Context, _ User) (*User, error) {
					return nil, h.repo.SetActive(ctx, s.Token, user.ID, active)
				},
			},
			SuccessTitle:   "User updated",
			SuccessMessage: fmt.Sprintf("%s has been %s.", user.FullName, state),
			FailureTitle:   "Update failed",
			Fallback:       "Failed to update user status. Reverting...",
			Unsupported:    "User activation is not supported by this server deployment.",
		})
	}
}
