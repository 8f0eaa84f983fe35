package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"biteengine/database"
	"biteengine/internal/config"
	"biteengine/internal/handler"
	"biteengine/internal/ingestion/kakao"
	"biteengine/internal/livefeed"
	"biteengine/internal/middleware"
	"biteengine/internal/repository"
	"biteengine/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	redisClient, err := database.ConnectRedis(ctx, cfg, logger)
	if err != nil {
		logger.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	// Repositories
	restaurantRepo := repository.NewRestaurantRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	// Live feed: Redis pub/sub into a websocket hub with a bounded projection
	feed := livefeed.NewFeed(service.FeedLimit)
	hub := livefeed.NewHub(redisClient, cfg.ActivityChannel, feed, logger)
	go hub.Run(ctx)
	go hub.Subscribe(ctx)
	publisher := livefeed.NewRedisPublisher(redisClient, cfg.ActivityChannel)

	// Services
	authService := service.NewAuthService(cfg)
	restaurantService := service.NewRestaurantService(restaurantRepo, voteRepo, cfg.TotalVoters)
	voteService := service.NewVoteService(voteRepo, activityRepo, restaurantRepo, publisher, logger)
	activityService := service.NewActivityService(activityRepo)
	sessionService := service.NewSessionService(sessionRepo, restaurantService)

	// Ingestion pipeline
	kakaoClient := kakao.NewClient(cfg.KakaoAPIURL, cfg.KakaoAPIKey)
	importer := kakao.NewImporter(kakaoClient, restaurantRepo, logger)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware(cfg.CORSOrigins))

	api := router.Group("/api")
	{
		handler.NewAuthHandler(authService).RegisterRoutes(api)
		handler.NewRestaurantHandler(restaurantService).RegisterRoutes(api)
		handler.NewActivityHandler(activityService).RegisterRoutes(api)
		handler.NewSessionHandler(sessionService).RegisterRoutes(api)

		authed := api.Group("", middleware.AuthMiddleware(authService))
		handler.NewVoteHandler(voteService).RegisterRoutes(authed)

		admin := api.Group("/admin", middleware.AuthMiddleware(authService), middleware.RequireAdmin())
		handler.NewAdminHandler(importer, sessionService, cfg).RegisterRoutes(admin)
	}

	router.GET("/ws/feed", func(c *gin.Context) {
		livefeed.ServeWS(hub, c.Writer, c.Request, logger)
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: router,
	}

	go func() {
		logger.Info("API server listening", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelDebug
	switch cfg.LogLevel {
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

// corsMiddleware allows the configured frontend origins
func corsMiddleware(origins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(origins))
	for _, origin := range origins {
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowed[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
