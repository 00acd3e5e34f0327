package handler

import (
	"wallet-settlement/internal/adapter/http/middleware"
	redisStore "wallet-settlement/internal/adapter/storage/redis"
	"wallet-settlement/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	DepositSvc     ports.DepositService
	SettlementSvc  ports.SettlementService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	Mode           string             // gin mode; empty = release
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	mode := deps.Mode
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20))

	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	rules := middleware.DefaultRateLimitRules()
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

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	walletHandler := NewWalletHandler(deps.WalletSvc)
	depositHandler := NewDepositHandler(deps.DepositSvc)
	cartHandler := NewCartHandler(deps.SettlementSvc)

	v1 := r.Group("/api/v1")

	// Gateway callbacks carry no bearer token; the browser is redirected here.
	v1.GET("/wallets/deposit/fiat/callback", rl("callbacks"), depositHandler.FiatCallback)
	v1.GET("/cart/pay/fiat/callback", rl("callbacks"), cartHandler.FiatCallback)

	wallets := v1.Group("/wallets", jwtAuth)
	{
		wallets.POST("", rl("wallets_create"), walletHandler.Provision)
		wallets.GET("/me", rl("wallets"), walletHandler.Me)
		wallets.GET("/me/transactions", rl("wallets"), walletHandler.Transactions)

		wallets.POST("/deposit/fiat", rl("deposits"), depositHandler.InitiateFiat)
		wallets.GET("/deposit/chain/address", rl("wallets"), depositHandler.ChainAddress)
		wallets.POST("/deposit/chain/verify", rl("deposits"), depositHandler.VerifyChain)
	}

	cart := v1.Group("/cart", jwtAuth)
	{
		cart.POST("/pay", rl("cart_pay"), cartHandler.Pay)
		cart.POST("/pay/chain/verify", rl("cart_pay"), cartHandler.VerifyChain)
	}

	return r
}
