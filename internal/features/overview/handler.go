package overview

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/ecocheck-admin/internal/apiclient"
	"github.com/xyz-asif/ecocheck-admin/internal/dashboard"
	"github.com/xyz-asif/ecocheck-admin/internal/features/reports"
	"github.com/xyz-asif/ecocheck-admin/internal/features/users"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/response"
)

type Handler struct {
	env      *dashboard.Env
	reports  *reports.Service
	users    *users.Service
	location *time.Location
	now      func() time.Time
}

func NewHandler(env *dashboard.Env, reportService *reports.Service, userService *users.Service, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.Local
	}
	return &Handler{env: env, reports: reportService, users: userService, location: loc, now: time.Now}
}

// GetOverview godoc
// @Summary Dashboard overview
// @Description Report totals, status distribution, the daily trend of the last 7 days and user counts, computed from the session's cached collections
// @Tags dashboard
// @Produce json
// @Param refresh query bool false "Fetch reports and users again from the API"
// @Success 200 {object} response.APIResponse{data=Overview}
// @Failure 401 {object} response.APIResponse
// @Failure 502 {object} response.APIResponse
// @Router /dashboard/overview [get]
func (h *Handler) GetOverview(c *gin.Context) {
	s, ws, ok := h.env.Begin(c)
	if !ok {
		return
	}
	refresh := c.Query("refresh") == "true"

	var reportItems []reports.Report
	var userItems []users.User
	var degraded []apiclient.Capability

	reportCache, err := h.reports.Load(c.Request.Context(), s, ws, refresh)
	if err != nil {
		capability := h.env.ListFailure(c, s, "Reports", err)
		if capability == nil {
			return
		}
		degraded = append(degraded, *capability)
	} else {
		reportItems = reportCache.Items()
	}

	userCache, err := h.users.Load(c.Request.Context(), s, ws, refresh)
	if err != nil {
		capability := h.env.ListFailure(c, s, "Users", err)
		if capability == nil {
			return
		}
		degraded = append(degraded, *capability)
	} else {
		userItems = userCache.Items()
	}

	view := Compose(reportItems, userItems, s.Role, h.now().In(h.location))
	view.Degraded = degraded
	response.Success(c, view)
}
