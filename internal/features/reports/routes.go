package reports

import (
	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/ecocheck-admin/internal/dashboard"
)

func RegisterRoutes(router *gin.RouterGroup, env *dashboard.Env, repo *Repository, service *Service, auth gin.HandlerFunc) {
	handler := NewHandler(env, repo, service)

	reports := router.Group("/reports")
	reports.Use(auth)
	{
		reports.GET("", handler.List)
		reports.POST("/:id/status", handler.RequestStatusChange)
	}
}
