package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/salonhub/salon-backend/internal/cache"
	"github.com/salonhub/salon-backend/internal/config"
	dbpkg "github.com/salonhub/salon-backend/internal/db"
	"github.com/salonhub/salon-backend/internal/googleauth"
	"github.com/salonhub/salon-backend/internal/logger"
	"github.com/salonhub/salon-backend/internal/mail"
	"github.com/salonhub/salon-backend/internal/routes"
	"github.com/salonhub/salon-backend/internal/storage"
)

func main() {

	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	db := dbpkg.NewDB(cfg)

	// Redis is optional: without it the queue falls back to count+1 and the
	// popularity ranking is computed on every request.
	redisClient, err := cache.NewClient(cfg)
	if err != nil {
		logger.Warn("redis unavailable, continuing without it", zap.Error(err))
		redisClient = nil
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Redis:    redisClient,
		Uploader: storage.NewS3Uploader(cfg),
		Mailer:   mail.NewSMTPSender(cfg),
		Verifier: googleauth.NewIDTokenVerifier(cfg.GoogleClientID),
	})

	logger.Info("server starting", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
