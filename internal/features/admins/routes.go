package admins

import (
	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/ecocheck-admin/internal/dashboard"
	"github.com/xyz-asif/ecocheck-admin/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, env *dashboard.Env, repo *Repository, auth gin.HandlerFunc) {
	handler := NewHandler(env, repo)

	admins := router.Group("/admins")
	admins.Use(auth, middleware.RequireSuperAdmin())
	{
		admins.GET("", handler.List)
		admins.POST("", handler.Create)
		admins.POST("/:id/active", handler.RequestActiveChange)
	}
}
