package reports

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/ecocheck-admin/internal/dashboard"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/optimistic"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/prompt"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/response"
	"github.com/xyz-asif/ecocheck-admin/internal/session"
)

type Handler struct {
	env     *dashboard.Env
	repo    *Repository
	service *Service
}

func NewHandler(env *dashboard.Env, repo *Repository, service *Service) *Handler {
	return &Handler{env: env, repo: repo, service: service}
}

// ListReports godoc
// @Summary List reports
// @Description Filtered, sorted and paginated view of the cached reports. The cache is fetched on first view or when refresh is set.
// @Tags reports
// @Produce json
// @Param search query string false "Case-insensitive search over reporter name, description, location, landmark and contact"
// @Param sort query string false "newest | oldest"
// @Param page query int false "Page number"
// @Param refresh query bool false "Fetch again from the API"
// @Success 200 {object} response.APIResponse{data=dashboard.ListView[Report]}
// @Failure 401 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Failure 502 {object} response.APIResponse
// @Router /reports [get]
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

	cache, err := h.service.Load(c.Request.Context(), s, ws, c.Query("refresh") == "true")
	if err != nil {
		if capability := h.env.ListFailure(c, s, "Reports", err); capability != nil {
			response.Success(c, dashboard.Unavailable(q, Sorter, *capability))
		}
		return
	}

	lv, q := dashboard.Derive(cache.Items(), q, Fields, Sorter)
	ws.SetQuery(CacheName, q)
	response.Success(c, lv)
}

// RequestStatusChange godoc
// @Summary Ask to change a report's status
// @Description Registers the change behind a confirmation prompt. Nothing is sent to the API until the prompt is confirmed.
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param request body UpdateStatusRequest true "New status: Pending, On Going or Resolved"
// @Success 200 {object} response.APIResponse{data=prompt.Prompt}
// @Failure 404 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /reports/{id}/status [post]
func (h *Handler) RequestStatusChange(c *gin.Context) {
	s, ws, ok := h.env.Begin(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}
	status, valid := ParseStatus(req.Status)
	if !valid {
		response.ValidationError(c, "Status must be Pending, On Going or Resolved", "INVALID_STATUS")
		return
	}

	id := c.Param("id")
	cache := h.service.Cache(ws)
	report, found := cache.Find(id)
	if !found {
		response.NotFound(c, "Report not found", "REPORT_NOT_FOUND")
		return
	}

	p := ws.Gate.Ask(prompt.Prompt{
		Title:        "Change report status",
		Message:      fmt.Sprintf("Change the status of %s's report to %s?", report.ReporterName, status),
		ConfirmLabel: "Yes, update",
		CancelLabel:  "Cancel",
		Severity:     severityOf(status),
	}, h.changeStatus(s, cache, report, status))

	response.Success(c, p, "Confirmation required")
}

func (h *Handler) changeStatus(s *session.Session, cache *optimistic.Collection[Report], report Report, status Status) prompt.Action {
	return func(ctx context.Context) (prompt.Notification, error) {
		return dashboard.Apply(ctx, h.env, s, cache, dashboard.Change[Report]{
			Resource: CacheName,
			Field:    "status",
			Value:    status,
			Mutation: optimistic.Mutation[Report]{
				ID:    report.ID,
				Apply: func(r *Report) { r.SetStatus(status) },
				Remote: func(ctx context.Context, _ Report) (*Report, error) {
					return h.repo.UpdateStatus(ctx, s.Token, report.ID, status)
				},
				Merge: func(local *Report, server Report) {
					if server.UpdatedAt.Present() {
						local.UpdatedAt = server.UpdatedAt
					}
				},
			},
			SuccessTitle:   "Status updated",
			SuccessMessage: fmt.Sprintf("%s's report is now %s.", report.ReporterName, status),
			FailureTitle:   "Update failed",
			Fallback:       "Failed to update report status. Reverting...",
		})
	}
}

func severityOf(s Status) prompt.Severity {
	switch s {
	case StatusResolved:
		return prompt.SeveritySuccess
	case StatusOnGoing:
		return prompt.SeverityWarning
	default:
		return prompt.SeverityNeutral
	}
}
