package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"asset-signature-service/config"
	httpHandler "asset-signature-service/internal/adapter/http/handler"
	pgStorage "asset-signature-service/internal/adapter/storage/postgres"
	redisStorage "asset-signature-service/internal/adapter/storage/redis"
	"asset-signature-service/internal/core/ports"
	"asset-signature-service/internal/service"
	"asset-signature-service/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("algorithm", cfg.Signing.Algorithm).
		Msg("Starting Asset Signature Service")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	sigRepo := pgStorage.NewSignatureRepo(pool)
	ackRepo := pgStorage.NewAcknowledgmentRepo(pool)
	userRepo := pgStorage.NewUserRepo(pool)
	auditRepo := pgStorage.NewAuditRepository(pool)

	// Initialize Redis stores
	statsCache := redisStorage.NewStatsCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	var digestSvc ports.DigestService
	switch cfg.Signing.Algorithm {
	case "hmac-sha256":
		digestSvc = service.NewHMACDigestService(cfg.Signing.Key)
	default:
		digestSvc = service.NewSHA256DigestService()
	}
	codec := service.NewPayloadCodec()
	tokenSvc := service.NewSignatureTokenService(digestSvc, codec, cfg.Signing.FreshnessWindow, log)
	authTokenSvc := service.NewJWTAuthTokenService(cfg.Auth.Secret, cfg.Auth.Expiry, cfg.Auth.Issuer)

	// Initialize business services
	verificationSvc := service.NewVerificationService(ackRepo, userRepo, sigRepo, tokenSvc, codec, log)
	recordSvc := service.NewRecordService(sigRepo, ackRepo, tokenSvc, digestSvc, log)
	statsSvc := service.NewStatisticsService(sigRepo, statsCache, log)
	auditSvc := service.NewAuditService(auditRepo, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		TokenSvc:        tokenSvc,
		VerificationSvc: verificationSvc,
		RecordSvc:       recordSvc,
		StatsSvc:        statsSvc,
		AuthTokenSvc:    authTokenSvc,
		RateLimitStore:  rateLimitStore,
		HealthCheckers:  []ports.HealthChecker{pgHealth, redisHealth},
		AuditSvc:        auditSvc,
		Logger:          log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
