package users

import (
	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/ecocheck-admin/internal/dashboard"
	"github.com/xyz-asif/ecocheck-admin/internal/features/reports"
)

func RegisterRoutes(router *gin.RouterGroup, env *dashboard.Env, repo *Repository, service *Service, reportService *reports.Service, auth gin.HandlerFunc) {
	handler := NewHandler(env, repo, service, reportService)

	users := router.Group("/users")
	users.Use(auth)
	{
		users.GET("", handler.List)
		users.POST("/:id/active", handler.RequestActiveChange)
	}
}
