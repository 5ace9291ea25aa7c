package handler

import (
	"secure-wallet-core/internal/adapter/http/middleware"
	"secure-wallet-core/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	OTPSvc         ports.OTPService
	LedgerSvc      ports.LedgerValidator
	AuditSvc       ports.AuditRecorder
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
	r.Use(middleware.Actor())

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// API v1 routes
	v1 := r.Group("/api/v1")

	walletHandler := NewWalletHandler(deps.WalletSvc)
	wallets := v1.Group("/wallets")
	{
		wallets.POST("/deposit", walletHandler.Deposit)
		wallets.POST("/withdraw", walletHandler.Withdraw)
		wallets.POST("/transfer", walletHandler.Transfer)
	}

	otpHandler := NewOTPHandler(deps.OTPSvc)
	otp := v1.Group("/otp")
	{
		otp.POST("/request", otpHandler.Request)
		otp.POST("/verify", otpHandler.Verify)
	}

	ledgerHandler := NewLedgerHandler(deps.LedgerSvc)
	ledger := v1.Group("/ledger")
	{
		ledger.GET("/wallets/:id/reconcile", ledgerHandler.Reconcile)
		ledger.GET("/integrity", ledgerHandler.Integrity)
	}

	auditHandler := NewAuditHandler(deps.AuditSvc)
	v1.GET("/audit", auditHandler.Query)

	return r
}
