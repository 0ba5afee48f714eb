package handler

import (
	"irispay/internal/adapter/http/middleware"
	redisStore "irispay/internal/adapter/storage/redis"
	"irispay/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	PaymentSvc     ports.PaymentService
	ReportingSvc   ports.ReportingService
	TokenSvc       ports.TokenService
	Ledger         ports.LedgerStore
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

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

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	paymentHandler := NewPaymentHandler(deps.PaymentSvc)
	dashboardHandler := NewDashboardHandler(deps.AuthSvc, deps.ReportingSvc)
	eventsHandler := NewEventsHandler(deps.Ledger)

	payments := v1.Group("/payments", jwtAuth)
	{
		payments.POST("", rl("payments"), paymentHandler.CreatePaymentRequest)
		payments.POST("/:id/approve", rl("payments"), paymentHandler.ApproveTransaction)
		payments.POST("/:id/reject", rl("payments"), paymentHandler.RejectTransaction)
	}

	transactions := v1.Group("/transactions", jwtAuth)
	{
		transactions.GET("", rl("dashboard"), dashboardHandler.ListTransactions)
		transactions.GET("/pending", rl("dashboard"), dashboardHandler.ListPendingTransactions)
	}

	dashboard := v1.Group("/dashboard", jwtAuth)
	{
		dashboard.GET("/stats", rl("dashboard"), dashboardHandler.GetStats)
	}

	v1.GET("/me", jwtAuth, rl("dashboard"), dashboardHandler.Me)
	v1.GET("/clients", jwtAuth, rl("dashboard"), dashboardHandler.ListClients)
	v1.GET("/merchants/me/settings", jwtAuth, rl("dashboard"), dashboardHandler.GetMerchantSettings)
	v1.GET("/events", jwtAuth, eventsHandler.Stream)

	return r
}
