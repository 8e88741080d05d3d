package logs

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/ecocheck-admin/internal/dashboard"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/response"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/view"
)

// CacheName is the workspace collection holding login logs.
const CacheName = "loginLogs"

// Fields is what the log search box matches, including the times as displayed.
var Fields view.Fields[Entry] = func(e Entry) []string {
	return []string{e.Email, e.Role, e.IPAddress, e.LoginText, e.LogoutText}
}

// Sorter is empty: logs are shown in server order.
var Sorter = view.Sorter[Entry]{}

type Handler struct {
	env  *dashboard.Env
	repo *Repository
}

func NewHandler(env *dashboard.Env, repo *Repository) *Handler {
	return &Handler{env: env, repo: repo}
}

// ListLoginLogs godoc
// @Summary List login logs
// @Description Super admins only. The latest 100 logins in server order. Deployments without the endpoint return an empty, degraded list.
// @Tags logs
// @Produce json
// @Param search query string false "Search over email, role, IP and the displayed login/logout times"
// @Param page query int false "Page number"
// @Param refresh query bool false "Fetch again from the API"
// @Success 200 {object} response.APIResponse{data=dashboard.ListView[Entry]}
// @Failure 401 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Failure 502 {object} response.APIResponse
// @Router /logs [get]
func (h *Handler) List(c *gin.Context) {
	s, ws, ok := h.env.Begin(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	q := ws.NextQuery(CacheName, c.Query("search"), "", page)

	cache := dashboard.CollectionOf(ws, CacheName, func(e Entry) string {
		return e.Email + "|" + e.LoginTime.String()
	})
	err := dashboard.Load(c.Request.Context(), cache, c.Query("refresh") == "true", func(ctx context.Context) ([]Entry, error) {
		return h.repo.List(ctx, s.Token)
	})
	if err != nil {
		if capability := h.env.ListFailure(c, s, "Login logs", err); capability != nil {
			response.Success(c, dashboard.Unavailable(q, Sorter, *capability))
		}
		return
	}

	lv, q := dashboard.Derive(cache.Items(), q, Fields, Sorter)
	ws.SetQuery(CacheName, q)
	response.Success(c, lv)
}
