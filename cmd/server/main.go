package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"buildhub/docs"
	"buildhub/internal/auth"
	"buildhub/internal/authapi"
	"buildhub/internal/cache"
	"buildhub/internal/config"
	"buildhub/internal/db"
	"buildhub/internal/handler"
	"buildhub/internal/logger"
	"buildhub/internal/model"
	"buildhub/internal/repository"
	"buildhub/internal/router"
	"buildhub/internal/service"
	"buildhub/internal/web"
)

// @title BuildHub API
// @version 1.0
// @description Session, email confirmation and current-user endpoints of the BuildHub site.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("database init", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	if err := gormDB.AutoMigrate(&model.Profile{}); err != nil {
		log.Fatal("auto-migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer func() { _ = cacheClient.Close() }()
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		log.Warn("redis unreachable, sessions will not persist", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	cancel()

	// Auth
	verifier := auth.NewTokenVerifier(cfg.AuthJWTSecret)
	sessions := auth.NewRedisSessionStore(cacheClient)
	authClient := authapi.NewClient(cfg.AuthURL, cfg.AuthAnonKey, cfg.AuthTimeout)
	resolver := auth.NewResolver(verifier, sessions, authClient, cfg.SessionCookie, cfg.SessionTTL)

	// Services
	profileRepo := repository.NewProfileRepository(gormDB)
	userService := service.NewUserService(profileRepo)

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatal("templates", zap.Error(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer

	cookie := auth.CookieOptions{Name: cfg.SessionCookie, Secure: cfg.CookieSecure}
	router.Register(
		e,
		log,
		verifier,
		resolver,
		handler.NewPageHandler(userService, log),
		handler.NewAuthHandler(authClient, sessions, cookie, cfg.SessionTTL, log),
		handler.NewUserHandler(userService),
	)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	addr := ":" + cfg.ServerPort
	go func() {
		log.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.Environment))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
}
