package handler

import (
	"time"

	"purchase-engine/internal/adapter/http/middleware"
	"purchase-engine/internal/core/ports"
	"purchase-engine/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	PurchaseSvc      ports.PurchaseService
	DisputeSvc       ports.DisputeService
	LedgerSvc        ports.LedgerService
	ReconSvc         ports.ReconciliationService
	CommissionSvc    ports.CommissionResolver
	Inventory        ports.InventoryPool
	TokenSvc         ports.TokenService
	IdempotencyCache ports.IdempotencyCache // nil = idempotency disabled
	IdempotencyTTL   time.Duration
	RateLimiter      middleware.Limiter // nil = rate limiting disabled
	RateLimitRules   map[string]middleware.RateLimitRule
	HealthCheckers   []ports.HealthChecker
	AuditSvc         ports.AuditService  // nil = audit logging disabled
	Metrics          *telemetry.Metrics  // nil = request metrics disabled
	Gatherer         prometheus.Gatherer // nil = /metrics not served
	MaxBodyBytes     int64
	Logger           zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}
	r.Use(middleware.MaxBodySize(deps.MaxBodyBytes))

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Deep health check: storage and Redis
	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimiter == nil {
			return noop
		}
		rule, ok := deps.RateLimitRules[group]
		if !ok {
			return noop
		}
		return middleware.RateLimiter(deps.RateLimiter, group, rule, deps.Logger)
	}
	idem := noop
	if deps.IdempotencyCache != nil {
		idem = middleware.Idempotency(deps.IdempotencyCache, deps.IdempotencyTTL, deps.Metrics, deps.Logger)
	}

	purchaseHandler := NewPurchaseHandler(deps.PurchaseSvc)
	disputeHandler := NewDisputeHandler(deps.DisputeSvc)
	walletHandler := NewWalletHandler(deps.LedgerSvc, deps.ReconSvc)
	commissionHandler := NewCommissionHandler(deps.CommissionSvc)
	productHandler := NewProductHandler(deps.Inventory)

	// API v1 routes, all JWT-authenticated
	v1 := r.Group("/api/v1", middleware.JWTAuth(deps.TokenSvc, deps.Logger))

	v1.POST("/purchases", middleware.RequireRole(ports.RoleBuyer, ports.RoleAdmin), rl("purchases"), idem, purchaseHandler.Purchase)

	orders := v1.Group("/orders")
	{
		orders.GET("/:id", rl("orders"), purchaseHandler.GetOrder)
		orders.POST("/:id/dispute", rl("disputes"), disputeHandler.OpenDispute)
	}

	wallets := v1.Group("/wallets")
	{
		wallets.GET("/me/balance", rl("wallets"), walletHandler.GetBalance)
	}

	// --- Operator routes ---
	admin := v1.Group("/admin", middleware.RequireRole(ports.RoleAdmin), rl("admin"))
	{
		admin.POST("/orders/:id/resolution", disputeHandler.Resolve)

		admin.POST("/wallets/:owner_id", walletHandler.OpenWallet)
		admin.POST("/wallets/:owner_id/recharges", walletHandler.Recharge)
		admin.PUT("/wallets/:owner_id/status", walletHandler.SetStatus)
		admin.GET("/wallets/:owner_id/reconcile", walletHandler.Reconcile)

		admin.POST("/commissions", commissionHandler.Create)
		admin.PATCH("/commissions/:id", commissionHandler.Toggle)

		admin.POST("/products", productHandler.Create)
	}

	return r
}

func noop(c *gin.Context) { c.Next() }
