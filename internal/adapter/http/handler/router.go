package handler

import (
	"asset-signature-service/internal/adapter/http/middleware"
	redisStore "asset-signature-service/internal/adapter/storage/redis"
	"asset-signature-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	TokenSvc        ports.TokenService
	VerificationSvc ports.VerificationService
	RecordSvc       ports.RecordService
	StatsSvc        ports.StatisticsService
	AuthTokenSvc    ports.AuthTokenService
	RateLimitStore  *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers  []ports.HealthChecker
	AuditSvc        ports.AuditService // nil = audit logging disabled
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// All signature routes require the signer principal.
	jwtAuth := middleware.JWTAuth(deps.AuthTokenSvc, deps.Logger)

	sigHandler := NewSignatureHandler(deps.TokenSvc, deps.VerificationSvc, deps.StatsSvc)
	recHandler := NewRecordHandler(deps.RecordSvc)

	v1 := r.Group("/api/v1")
	signatures := v1.Group("/signatures", jwtAuth)
	{
		signatures.POST("/generate", rl("generate"), sigHandler.Generate)
		signatures.POST("/validate", rl("validate"), sigHandler.Validate)
		signatures.POST("/verify/:assetId", rl("verify"), sigHandler.Verify)
		signatures.POST("/hash", rl("validate"), sigHandler.Hash)
		signatures.GET("/statistics", sigHandler.Statistics)

		signatures.POST("/records", rl("records"), recHandler.Create)
		signatures.GET("/records", recHandler.List)
		signatures.GET("/records/:id", recHandler.Get)
		signatures.POST("/records/:id/invalidate", rl("records"), recHandler.Invalidate)
		signatures.POST("/records/:id/archive", rl("records"), recHandler.Archive)
		signatures.GET("/expiring", recHandler.Expiring)
		signatures.GET("/metadata/:assetId", recHandler.Metadata)
	}

	return r
}
