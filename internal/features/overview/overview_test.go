package overview

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xyz-asif/ecocheck-admin/internal/apiclient"
	"github.com/xyz-asif/ecocheck-admin/internal/dashboard/dashboardtest"
	"github.com/xyz-asif/ecocheck-admin/internal/features/reports"
	"github.com/xyz-asif/ecocheck-admin/internal/features/users"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/cloudinary"
	"github.com/xyz-asif/ecocheck-admin/internal/session"
)

func report(status reports.Status, created time.Time) reports.Report {
	return reports.Report{Status: status, CreatedAt: apiclient.NewTimestamp(created)}
}

func TestCompose(t *testing.T) {
	now := time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC)
	items := []reports.Report{
		report(reports.StatusResolved, time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)),
		report(reports.StatusOnGoing, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		report("", time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)),
		report("whatever", time.Time{}),
	}
	people := []users.User{{ID: "u1", IsActive: true}, {ID: "u2"}, {ID: "u3", IsActive: true}}

	o := Compose(items, people, session.RoleAdmin, now)

	assert.Equal(t, 4, o.TotalReports)
	assert.Equal(t, StatusCounts{Pending: 2, OnGoing: 1, Resolved: 1}, o.Statuses)

	require.Len(t, o.Distribution, 3)
	assert.Equal(t, "Resolved", o.Distribution[0].Label)
	assert.Equal(t, 25.0, o.Distribution[0].Percent)
	assert.Equal(t, "On Going", o.Distribution[1].Label)
	assert.Equal(t, "Pending", o.Distribution[2].Label)
	assert.Equal(t, 50.0, o.Distribution[2].Percent)

	require.Len(t, o.Trend, TrendDays)
	assert.Equal(t, "2024-01-01", o.Trend[0].Date)
	assert.Equal(t, 1, o.Trend[0].Count)
	assert.Equal(t, "2024-01-07", o.Trend[6].Date)
	assert.Equal(t, 1, o.Trend[6].Count)
	total := 0
	for _, d := range o.Trend {
		total += d.Count
	}
	assert.Equal(t, 2, total)

	assert.Equal(t, 3, o.TotalUsers)
	assert.Equal(t, 2, o.ActiveUsers)
	assert.False(t, o.Navigation.Admins)
	assert.True(t, o.Navigation.Users)
}

func TestCompose_Empty(t *testing.T) {
	o := Compose(nil, nil, session.RoleSuperAdmin, time.Now())
	assert.Zero(t, o.TotalReports)
	for _, s := range o.Distribution {
		assert.Zero(t, s.Percent)
	}
	assert.Len(t, o.Trend, TrendDays)
	assert.True(t, o.Navigation.Admins)
	assert.True(t, o.Navigation.LoginLogs)
}

func setup(t *testing.T, loc *time.Location, now time.Time) *dashboardtest.Harness {
	t.Helper()
	h := dashboardtest.New(t, session.RoleSuperAdmin)
	photos, err := cloudinary.NewResolver(h.Server.URL, "", "", "")
	require.NoError(t, err)

	reportRepo := reports.NewRepository(h.Env.API, photos)
	handler := NewHandler(h.Env, reports.NewService(reportRepo), users.NewService(users.NewRepository(h.Env.API)), loc)
	handler.now = func() time.Time { return now }
	h.API.GET("/dashboard/overview", h.Guard, handler.GetOverview)
	return h
}

func TestGetOverview_DaysFollowConfiguredLocation(t *testing.T) {
	manila := time.FixedZone("PHT", 8*60*60)
	// 2024-01-07 01:00 in Manila; still Jan 6 in UTC.
	h := setup(t, manila, time.Date(2024, 1, 6, 17, 0, 0, 0, time.UTC))

	h.Upstream.GET("/reports", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(`[
			{"_id":"r1","status":"Resolved","createdAt":"2024-01-06T16:30:00Z"},
			{"_id":"r2","createdAt":"2024-01-06T15:59:59Z"}
		]`))
	})
	h.Upstream.GET("/users", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": []gin.H{{"_id": "u1"}, {"_id": "u2", "isActive": false}}})
	})

	w := h.Do(http.MethodGet, "/api/v1/dashboard/overview", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var o Overview
	dashboardtest.Decode(t, w, &o)
	require.Len(t, o.Trend, TrendDays)
	assert.Equal(t, "2024-01-07", o.Trend[6].Date)
	assert.Equal(t, 1, o.Trend[6].Count)
	assert.Equal(t, 1, o.Trend[5].Count)
	assert.Equal(t, 2, o.TotalUsers)
	assert.Equal(t, 1, o.ActiveUsers)
	assert.Empty(t, o.Degraded)
}

func TestGetOverview_DegradesMissingUsers(t *testing.T) {
	h := setup(t, time.UTC, time.Now())
	h.Upstream.GET("/reports", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{{"_id": "r1"}})
	})
	h.Upstream.GET("/users", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Cannot GET /users"})
	})

	w := h.Do(http.MethodGet, "/api/v1/dashboard/overview", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var o Overview
	dashboardtest.Decode(t, w, &o)
	assert.Equal(t, 1, o.TotalReports)
	assert.Equal(t, 1, o.Statuses.Pending)
	assert.Zero(t, o.TotalUsers)
	require.Len(t, o.Degraded, 1)
	assert.Equal(t, "Users", o.Degraded[0].Feature)
	assert.False(t, o.Degraded[0].Supported)
}

func TestGetOverview_ServerErrorBlocksView(t *testing.T) {
	h := setup(t, time.UTC, time.Now())
	h.Upstream.GET("/reports", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "database offline"})
	})

	w := h.Do(http.MethodGet, "/api/v1/dashboard/overview", nil)
	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "database offline", dashboardtest.Decode(t, w, nil).Message)
}

func TestGetOverview_ExpiredSession(t *testing.T) {
	h := setup(t, time.UTC, time.Now())
	h.Upstream.GET("/reports", func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "jwt expired"})
	})

	w := h.Do(http.MethodGet, "/api/v1/dashboard/overview", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, h.Env.Registry.Len())

	w = h.Do(http.MethodGet, "/api/v1/dashboard/overview", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
