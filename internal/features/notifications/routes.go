package notifications

import (
	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/ecocheck-admin/internal/dashboard"
)

func RegisterRoutes(router *gin.RouterGroup, env *dashboard.Env, auth gin.HandlerFunc) {
	handler := NewHandler(env)

	notifications := router.Group("/notifications")
	notifications.Use(auth)
	{
		notifications.GET("", handler.ListNotifications)
		notifications.DELETE("/:id", handler.DismissNotification)
	}

	prompts := router.Group("/prompts")
	prompts.Use(auth)
	{
		prompts.POST("/:id/confirm", handler.ConfirmPrompt)
		prompts.POST("/:id/cancel", handler.CancelPrompt)
	}
}
