package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"pricingsite/internal/config"
	"pricingsite/internal/database"
	"pricingsite/internal/domain/content"
	"pricingsite/internal/domain/editor"
	"pricingsite/internal/domain/pricing"
	"pricingsite/internal/middleware"
	jwtsvc "pricingsite/internal/pkg/jwt"
	"pricingsite/internal/pkg/logging"
)

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config")
	}

	log := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("db connect failed")
	}
	if err := database.Migrate(db, &content.FieldOverride{}); err != nil {
		log.WithError(err).Fatal("migrate failed")
	}

	hub := content.NewHub()
	contentService, err := content.NewService(content.NewRepository(db), cfg.ContentCacheSize, hub, log)
	if err != nil {
		log.WithError(err).Fatal("content service")
	}
	contentHandler := content.NewHandler(contentService, hub, log)

	pricingService := pricing.NewService(contentService, log)
	pricingHandler := pricing.NewHandler(pricingService, pricing.MustRenderer(), pricing.RedirectNavigator{}, cfg.DefaultSection)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	editorService := editor.NewService(editor.Credentials{
		Username:     cfg.EditorUsername,
		PasswordHash: cfg.EditorPasswordHash,
	}, j)
	editorHandler := editor.NewHandler(editorService, j)
	if !cfg.EditorEnabled() {
		log.Warn("EDITOR_PASSWORD_HASH not set, editor login disabled")
	}

	metrics := middleware.NewMetrics("pricingsite")

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(metrics.Middleware())

	r.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	pricing.RegisterPageRoutes(r, pricingHandler)

	v1 := r.Group("/api/v1")
	{
		// public
		pricing.RegisterPublicRoutes(v1, pricingHandler)
		editor.RegisterPublicRoutes(v1, editorHandler)

		// editor only
		protected := v1.Group("")
		protected.Use(middleware.JWTAuth(j), editor.RequireEditor())
		{
			content.RegisterEditorRoutes(protected, contentHandler)
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithFields(logrus.Fields{"port": cfg.Port, "env": cfg.AppEnv}).Info("server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("shutdown")
	}
	log.Info("server stopped")
}
