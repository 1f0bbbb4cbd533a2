package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/storekit/storefront-api/internal/api"
	"github.com/storekit/storefront-api/internal/core/service"
	"github.com/storekit/storefront-api/internal/infrastructure/config"
	"github.com/storekit/storefront-api/internal/infrastructure/db/postgres"
	"github.com/storekit/storefront-api/internal/infrastructure/db/redis"
	"github.com/storekit/storefront-api/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connect")
	}
	defer pool.Close()

	rdb, err := redis.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect")
	}
	defer func() { _ = rdb.Close() }()

	// Repositories & services
	adminRepo := postgres.NewAdminRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	sessions := redis.NewSessionStore(rdb, cfg.Session.TTL)

	authService := service.NewAuthService(adminRepo, cfg.JWTSecret, cfg.JWTTTL, log)
	productService := service.NewProductService(productRepo, log)
	userService := service.NewUserService(userRepo, log)

	e := api.NewRouter(cfg, log, authService, productService, userService, sessions)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server stopped")
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
