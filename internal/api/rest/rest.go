package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/patentdex/patentdex/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Patent endpoints (public read access)
		v1.GET("/patents", handler.ListPatents)
		v1.GET("/patents/:id", handler.GetPatent)
		v1.GET("/patents/:id/metadata", handler.GetPatentMetadata)

		// Registration and tokenization mutate chain state (requires authentication)
		v1.POST("/patents", middleware.Auth(authCfg), handler.RegisterPatent)
		v1.POST("/patents/:id/verify", middleware.Auth(authCfg), handler.VerifyPatent)
		v1.POST("/patents/:id/tokenize", middleware.Auth(authCfg), handler.TokenizePatent)

		// Stake endpoints
		v1.GET("/patents/:id/position", handler.GetStakePosition)
		v1.POST("/stakes", middleware.Auth(authCfg), handler.Stake)
		v1.DELETE("/stakes/:nft_token_id", middleware.Auth(authCfg), handler.Unstake)

		// Token market endpoints (public read access)
		v1.GET("/tokens/:address/metrics", handler.GetTokenMetrics)
		v1.GET("/tokens/:address/candles", handler.GetTokenCandles)
		v1.GET("/tokens/:address/trades", handler.GetTradeHistory)
		v1.GET("/tokens/:address/session", handler.GetSession)

		// Trading endpoints (requires authentication)
		v1.POST("/tokens/:address/quote", middleware.Auth(authCfg), handler.QuoteTrade)
		v1.POST("/tokens/:address/trade", middleware.Auth(authCfg), handler.SubmitTrade)
	}
}
