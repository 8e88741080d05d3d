package overview

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/ecocheck-admin/internal/dashboard"
	"github.com/xyz-asif/ecocheck-admin/internal/features/reports"
	"github.com/xyz-asif/ecocheck-admin/internal/features/users"
)

func RegisterRoutes(router *gin.RouterGroup, env *dashboard.Env, reportService *reports.Service, userService *users.Service, loc *time.Location, auth gin.HandlerFunc) {
	handler := NewHandler(env, reportService, userService, loc)

	router.GET("/dashboard/overview", auth, handler.GetOverview)
}
