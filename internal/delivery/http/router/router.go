// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pennyekart/internal/delivery/http/middleware"
	"pennyekart/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CouponHandler  *handler.CouponHandler
	CollabHandler  *handler.CollabHandler
	PayoutHandler  *handler.PayoutHandler
	ProductHandler *handler.ProductHandler
	ReportHandler  *handler.ReportHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	couponHandler  *handler.CouponHandler
	collabHandler  *handler.CollabHandler
	payoutHandler  *handler.PayoutHandler
	productHandler *handler.ProductHandler
	reportHandler  *handler.ReportHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		couponHandler:  params.CouponHandler,
		collabHandler:  params.CollabHandler,
		payoutHandler:  params.PayoutHandler,
		productHandler: params.ProductHandler,
		reportHandler:  params.ReportHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public storefront routes
	primeGroup := e.Group("/prime")
	{
		primeGroup.GET("/coupons", r.couponHandler.ListActiveCoupons)
		primeGroup.POST("/collabs", r.collabHandler.RequestCollab)
		primeGroup.GET("/collabs/:code/qr", r.collabHandler.GenerateCollabQR)
	}

	// Agent routes that require authentication
	agentGroup := e.Group("/agent")
	agentGroup.Use(r.authMiddleware.Authenticate)
	{
		agentGroup.POST("/prime/collabs", r.collabHandler.RequestCollabLinked)
		agentGroup.GET("/wallet", r.payoutHandler.GetMyWallet)
		agentGroup.GET("/wallet/transactions", r.payoutHandler.ListMyWalletTransactions)
	}

	// Seller routes that require authentication and the "seller" role
	sellerGroup := e.Group("/seller")
	sellerGroup.Use(r.authMiddleware.Authenticate)
	sellerGroup.Use(r.authMiddleware.RequireRole("seller"))
	{
		sellerGroup.POST("/products", r.productHandler.CreateProduct)
		sellerGroup.GET("/products", r.productHandler.ListMyProducts)
		sellerGroup.PUT("/products/:productId", r.productHandler.UpdateProduct)
		sellerGroup.DELETE("/products/:productId", r.productHandler.DeleteProduct)

		sellerGroup.POST("/prime/coupons", r.couponHandler.CreateCoupon)
		sellerGroup.GET("/prime/coupons", r.couponHandler.ListMyCoupons)
		sellerGroup.PATCH("/prime/coupons/:couponId", r.couponHandler.ToggleCoupon)
		sellerGroup.DELETE("/prime/coupons/:couponId", r.couponHandler.DeleteCoupon)
	}

	// Internal routes used by the checkout flow
	internalGroup := e.Group("/internal")
	internalGroup.Use(r.authMiddleware.Authenticate)
	{
		internalGroup.POST("/prime/usages", r.collabHandler.RecordUsage)
	}

	// Admin routes that require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole("admin"))
	{
		adminGroup.GET("/prime/collabs", r.collabHandler.ListCollabs)
		adminGroup.GET("/prime/collabs/:collabId/usages", r.collabHandler.ListCollabUsages)
		adminGroup.POST("/prime/collabs/:collabId/settle", r.payoutHandler.SettleCollab)
		adminGroup.GET("/prime/overview", r.collabHandler.Overview)

		adminGroup.GET("/products", r.productHandler.ListProducts)
		adminGroup.GET("/products/:productId", r.productHandler.GetProduct)
		adminGroup.PATCH("/products/:productId/approval", r.productHandler.ApproveProduct)
		adminGroup.PATCH("/products/:productId/active", r.productHandler.ToggleProduct)

		adminGroup.GET("/reports/monthly", r.reportHandler.MonthlyReports)
	}
}
