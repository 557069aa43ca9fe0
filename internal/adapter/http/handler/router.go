package handler

import (
	"craft-economy/internal/adapter/http/middleware"
	"craft-economy/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxRequestBody = 1 << 20 // 1 MiB

// RouterDeps carries everything SetupRouter needs.
type RouterDeps struct {
	Ledger   ports.Ledger
	Catalog  ports.PriceCatalog
	Market   ports.Market
	Shop     ports.Shop
	AuthSvc  ports.AuthService
	TokenSvc ports.TokenService

	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter builds the gin engine with all routes and middleware wired.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxRequestBody))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	authHandler := NewAuthHandler(deps.AuthSvc)
	ledgerHandler := NewLedgerHandler(deps.Ledger)
	catalogHandler := NewCatalogHandler(deps.Catalog)
	marketHandler := NewMarketHandler(deps.Market)
	shopHandler := NewShopHandler(deps.Shop)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/auth/login", authHandler.Login)

		v1.GET("/balances/top", ledgerHandler.Top)
		v1.GET("/balances/:id", ledgerHandler.GetBalance)
		v1.POST("/transfers", ledgerHandler.Transfer)

		v1.GET("/catalog/categories", catalogHandler.ListCategories)
		v1.GET("/catalog/categories/:category", catalogHandler.CategoryEntries)
		v1.GET("/catalog/prices/:kind", catalogHandler.GetPrice)

		v1.POST("/market/requests", marketHandler.CreateRequest)
		v1.GET("/market/requests", marketHandler.ListRequests)
		v1.DELETE("/market/requests/:id", marketHandler.WithdrawRequest)
		v1.POST("/market/requests/:id/fulfill", marketHandler.FulfillRequest)
		v1.GET("/market/deliveries/:recipient", marketHandler.GetDeliveries)
		v1.POST("/market/deliveries/:recipient/claim", marketHandler.ClaimDeliveries)

		v1.POST("/shop/buy", shopHandler.Buy)
		v1.POST("/shop/sell", shopHandler.Sell)

		// Admin-only mutations.
		admin := v1.Group("")
		admin.Use(middleware.JWTAuth(deps.TokenSvc, deps.Logger))
		{
			admin.PUT("/balances/:id", ledgerHandler.SetBalance)
			admin.POST("/balances/:id/adjust", ledgerHandler.AdjustBalance)
			admin.DELETE("/balances/:id", ledgerHandler.RemoveIdentity)
			admin.POST("/catalog/normalize", catalogHandler.Normalize)
		}
	}

	return r
}
