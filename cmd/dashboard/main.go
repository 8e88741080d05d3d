// @title EcoCheck Admin Dashboard API
// @version 1.0
// @description Session-backed dashboard over the EcoCheck API: reports, users, admins and login logs
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name ecocheck_session
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	docs "github.com/xyz-asif/ecocheck-admin/docs"
	"github.com/xyz-asif/ecocheck-admin/internal/apiclient"
	"github.com/xyz-asif/ecocheck-admin/internal/config"
	"github.com/xyz-asif/ecocheck-admin/internal/dashboard"
	"github.com/xyz-asif/ecocheck-admin/internal/database"
	"github.com/xyz-asif/ecocheck-admin/internal/middleware"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/audit"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/cloudinary"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/logger"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/metrics"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/ratelimit"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/response"
	"github.com/xyz-asif/ecocheck-admin/internal/routes"
	"github.com/xyz-asif/ecocheck-admin/internal/session"
)

func main() {
	// Load config
	cfg := config.Load()

	log := logger.New(logger.ParseLevel(cfg.LogLevel))
	logger.Default().SetLevel(log.GetLevel())

	docs.SwaggerInfo.Host = "localhost:" + cfg.Port

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Sessions live in memory unless a shared store is configured
	var store session.Store = session.NewMemoryStore()
	var db *database.MongoDB
	if cfg.SessionStore == "mongo" {
		var err error
		db, err = database.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB: %v", err)
		}
		defer db.Disconnect(context.Background())

		mongoStore, err := session.NewMongoStore(ctx, db.Database)
		if err != nil {
			log.Fatal("Failed to prepare session store: %v", err)
		}
		store = mongoStore
		log.Info("Sessions stored in MongoDB database %s", cfg.MongoDB)
	} else {
		store.(*session.MemoryStore).StartCleanup(ctx, 5*time.Minute)
	}

	var publisher audit.Publisher = audit.Noop{}
	if cfg.AMQPURL != "" {
		amqpPublisher, err := audit.DialAMQP(cfg.AMQPURL, cfg.AuditQueue)
		if err != nil {
			log.Fatal("Failed to connect audit publisher: %v", err)
		}
		defer amqpPublisher.Close()
		publisher = amqpPublisher
		log.Info("Publishing mutation audit events to queue %s", cfg.AuditQueue)
	}

	photos, err := cloudinary.NewResolver(cfg.APIBaseURL, cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		log.Fatal("Invalid API_BASE_URL %q: %v", cfg.APIBaseURL, err)
	}

	m := metrics.New()
	env := &dashboard.Env{
		API:          apiclient.New(cfg.APIBaseURL, cfg.APITimeout, apiclient.WithLogger(log), apiclient.WithMetrics(m)),
		Registry:     dashboard.NewRegistry(m),
		Store:        store,
		Audit:        publisher,
		Log:          log.Named("dashboard"),
		CookieSecure: cfg.CookieSecure,
	}

	// Workspaces of sessions that expired without a logout
	env.Registry.StartCleanup(ctx, store, 5*time.Minute)

	limiter := ratelimit.New(cfg.LoginAttempts, time.Minute)
	limiter.StartCleanup(ctx, 5*time.Minute)

	// If we are running in production, be quiet and stop logging so much.
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Metrics(m))
	router.Use(middleware.Logger(log))
	router.Use(middleware.CORS(cfg.FrontendURL))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		status := "ok"
		if db != nil {
			if err := db.HealthCheck(c.Request.Context()); err != nil {
				log.Warn("Session store unhealthy: %v", err)
				status = "degraded"
			}
		}
		response.Success(c, map[string]interface{}{
			"status":     status,
			"time":       time.Now().Unix(),
			"workspaces": env.Registry.Len(),
		})
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	// Swagger documentation
	router.GET(
		"/swagger/*any",
		ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("/swagger/doc.json"),
			ginSwagger.DeepLinking(true),
			ginSwagger.DefaultModelsExpandDepth(-1),
			ginSwagger.DocExpansion("none"),
		),
	)

	routes.SetupRoutes(router, routes.Dependencies{
		Env:     env,
		Config:  cfg,
		Photos:  photos,
		Limiter: limiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Dashboard starting on port %s, API at %s", cfg.Port, cfg.APIBaseURL)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
