package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/ecocheck-admin/internal/config"
	"github.com/xyz-asif/ecocheck-admin/internal/dashboard"
	"github.com/xyz-asif/ecocheck-admin/internal/features/admins"
	"github.com/xyz-asif/ecocheck-admin/internal/features/auth"
	"github.com/xyz-asif/ecocheck-admin/internal/features/logs"
	"github.com/xyz-asif/ecocheck-admin/internal/features/notifications"
	"github.com/xyz-asif/ecocheck-admin/internal/features/overview"
	"github.com/xyz-asif/ecocheck-admin/internal/features/reports"
	"github.com/xyz-asif/ecocheck-admin/internal/features/users"
	"github.com/xyz-asif/ecocheck-admin/internal/middleware"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/ratelimit"
)

// Dependencies are the process-wide services the features share.
type Dependencies struct {
	Env     *dashboard.Env
	Config  *config.Config
	Photos  reports.PhotoResolver
	Limiter *ratelimit.RateLimiter
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	// API v1 group
	api := router.Group("/api/v1")

	env, cfg := deps.Env, deps.Config
	loc := cfg.Location()

	// Every authenticated route resolves the session cookie; an unknown or
	// expired session also drops whatever the workspace had cached.
	guard := middleware.Session(middleware.SessionConfig{
		Store:  env.Store,
		Secure: cfg.CookieSecure,
		OnEnd:  env.Registry.Drop,
	})

	// Reports and users are shared: the users list counts reports and the
	// overview charts both.
	reportsRepo := reports.NewRepository(env.API, deps.Photos)
	reportService := reports.NewService(reportsRepo)
	usersRepo := users.NewRepository(env.API)
	userService := users.NewService(usersRepo)

	auth.RegisterRoutes(api, env, auth.NewRepository(env.API), deps.Limiter, cfg.SessionTTL, guard)
	overview.RegisterRoutes(api, env, reportService, userService, loc, guard)
	reports.RegisterRoutes(api, env, reportsRepo, reportService, guard)
	users.RegisterRoutes(api, env, usersRepo, userService, reportService, guard)
	admins.RegisterRoutes(api, env, admins.NewRepository(env.API), guard)
	logs.RegisterRoutes(api, env, logs.NewRepository(env.API, loc), guard)
	notifications.RegisterRoutes(api, env, guard)
}
