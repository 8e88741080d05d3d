package auth

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/ecocheck-admin/internal/dashboard"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/ratelimit"
)

func RegisterRoutes(router *gin.RouterGroup, env *dashboard.Env, repo *Repository, limiter *ratelimit.RateLimiter, sessionTTL time.Duration, auth gin.HandlerFunc) {
	handler := NewHandler(env, repo, limiter, sessionTTL)

	authGroup := router.Group("/auth")
	{
		if limiter != nil {
			authGroup.POST("/login", ratelimit.Middleware(limiter), handler.Login)
		} else {
			authGroup.POST("/login", handler.Login)
		}
		authGroup.POST("/register", handler.Register)
		authGroup.POST("/logout", auth, handler.Logout)
	}

	router.GET("/session", auth, handler.GetSession)
}
