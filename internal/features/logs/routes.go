package logs

import (
	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/ecocheck-admin/internal/dashboard"
	"github.com/xyz-asif/ecocheck-admin/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, env *dashboard.Env, repo *Repository, auth gin.HandlerFunc) {
	handler := NewHandler(env, repo)

	logs := router.Group("/logs")
	logs.Use(auth, middleware.RequireSuperAdmin())
	{
		logs.GET("", handler.List)
	}
}
