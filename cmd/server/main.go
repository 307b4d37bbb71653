package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/lumen-academy/academy-api/internal/handler"
	"github.com/lumen-academy/academy-api/internal/middleware"
	"github.com/lumen-academy/academy-api/internal/repository"
	"github.com/lumen-academy/academy-api/internal/service"
	"github.com/lumen-academy/academy-api/internal/session"
	"github.com/lumen-academy/academy-api/pkg/cache"
	"github.com/lumen-academy/academy-api/pkg/config"
	"github.com/lumen-academy/academy-api/pkg/database"
	"github.com/lumen-academy/academy-api/pkg/logger"
	corsmiddleware "github.com/lumen-academy/academy-api/pkg/middleware/cors"
	reqidmiddleware "github.com/lumen-academy/academy-api/pkg/middleware/requestid"
	"github.com/lumen-academy/academy-api/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if err := database.Migrate(cfg.Database); err != nil {
		logr.Sugar().Fatalw("migrations failed", "error", err)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("database connection failed", "error", err)
	}
	defer db.Close() //nolint:errcheck

	sessions, err := newSessionStore(cfg)
	if err != nil {
		logr.Sugar().Fatalw("session store init failed", "error", err)
	}

	uploads, err := storage.NewLocalStorage(cfg.Uploads.Dir)
	if err != nil {
		logr.Sugar().Fatalw("uploads storage init failed", "error", err)
	}

	validate := validator.New()

	registrationRepo := repository.NewRegistrationRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)

	registrationSvc := service.NewRegistrationService(registrationRepo, validate, logr)
	authSvc := service.NewAuthService(adminRepo, sessions, logr)
	gallerySvc := service.NewGalleryService(galleryRepo, uploads, cfg.Uploads.PublicPath, logr)
	metricsSvc := service.NewMetricsService()

	cookie := handler.CookieConfig{Name: cfg.Session.CookieName, TTL: cfg.Session.TTL}

	registrationHandler := handler.NewRegistrationHandler(registrationSvc)
	authHandler := handler.NewAuthHandler(authSvc, cookie)
	galleryHandler := handler.NewGalleryHandler(gallerySvc, metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	api := r.Group("/api")
	api.POST("/register", registrationHandler.Create)
	api.POST("/admin/signup", authHandler.Signup)
	api.POST("/admin/login", authHandler.Login)
	api.GET("/gallery-images", galleryHandler.List)

	protected := api.Group("", middleware.RequireSession(sessions, cfg.Session.CookieName))
	protected.POST("/admin/logout", authHandler.Logout)
	protected.POST("/upload", galleryHandler.Upload)
	protected.GET("/admin/registrations", registrationHandler.List)
	protected.GET("/admin/registrations/export", registrationHandler.Export)

	// Pages, scripts and uploaded images share the public directory.
	r.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.Static.Dir))))

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func newSessionStore(cfg *config.Config) (session.Store, error) {
	if cfg.Session.Backend == "redis" {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return session.NewRedisStore(client, cfg.Session.TTL), nil
	}
	return session.NewMemoryStore(cfg.Session.TTL), nil
}
