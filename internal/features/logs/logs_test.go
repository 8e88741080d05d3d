package logs

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xyz-asif/ecocheck-admin/internal/dashboard"
	"github.com/xyz-asif/ecocheck-admin/internal/dashboard/dashboardtest"
	"github.com/xyz-asif/ecocheck-admin/internal/session"
)

func setup(t *testing.T) *dashboardtest.Harness {
	t.Helper()
	h := dashboardtest.New(t, session.RoleSuperAdmin)
	RegisterRoutes(h.API, h.Env, NewRepository(h.Env.API, time.UTC), h.Guard)
	return h
}

func TestList_FormatsAndSearchesTimes(t *testing.T) {
	h := setup(t)
	var limit string
	h.Upstream.GET("/auth/login-logs", func(c *gin.Context) {
		limit = c.Query("limit")
		c.JSON(http.StatusOK, gin.H{"success": true, "data": []gin.H{
			{"email": "b@ecocheck.ph", "role": "admin", "ipAddress": "10.0.0.2", "loginTime": "2024-03-05T14:30:00Z"},
			{"email": "a@ecocheck.ph", "role": "superadmin", "ip": "10.0.0.1", "loginTime": "2024-03-04T08:00:00Z", "logoutTime": "2024-03-04T09:15:00Z"},
		}})
	})

	var lv dashboard.ListView[Entry]
	dashboardtest.Decode(t, h.Do("GET", "/api/v1/logs", nil), &lv)
	require.Equal(t, "100", limit)
	require.Len(t, lv.Items, 2)
	require.Equal(t, "b@ecocheck.ph", lv.Items[0].Email)
	require.Equal(t, "Active", lv.Items[0].LogoutText)
	require.Equal(t, "Mar 5, 2024 2:30 PM", lv.Items[0].LoginText)
	require.Equal(t, "10.0.0.1", lv.Items[1].IPAddress)
	require.Empty(t, lv.SortKeys)

	dashboardtest.Decode(t, h.Do("GET", "/api/v1/logs?search=active", nil), &lv)
	require.Len(t, lv.Items, 1)
	require.Equal(t, "b@ecocheck.ph", lv.Items[0].Email)

	dashboardtest.Decode(t, h.Do("GET", "/api/v1/logs?search=9:15", nil), &lv)
	require.Len(t, lv.Items, 1)
	require.Equal(t, "a@ecocheck.ph", lv.Items[0].Email)
}

func TestList_ForbiddenDegrades(t *testing.T) {
	h := setup(t)
	h.Upstream.GET("/auth/login-logs", func(c *gin.Context) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Super admin access required"})
	})

	w := h.Do("GET", "/api/v1/logs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var lv dashboard.ListView[Entry]
	dashboardtest.Decode(t, w, &lv)
	require.NotNil(t, lv.Degraded)
	require.Equal(t, "forbidden", lv.Degraded.Reason)
	require.Equal(t, "Super admin access required", lv.Degraded.Message)
}

func TestList_NetworkFailureBlocksList(t *testing.T) {
	h := setup(t)
	h.Server.Close()

	w := h.Do("GET", "/api/v1/logs", nil)
	require.Equal(t, http.StatusBadGateway, w.Code)
	require.Equal(t, "Unable to reach the server", dashboardtest.Decode(t, w, nil).Message)
}
