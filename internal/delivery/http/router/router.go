// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vitrina/internal/delivery/http/middleware"
	"vitrina/internal/delivery/http/router/handler"
	"vitrina/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	CatalogHandler *handler.CatalogHandler
	StoreHandler   *handler.StoreHandler
	ProductHandler *handler.ProductHandler
	ProfileHandler *handler.ProfileHandler
	ShareHandler   *handler.ShareHandler
	StatsHandler   *handler.StatsHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	catalogHandler *handler.CatalogHandler
	storeHandler   *handler.StoreHandler
	productHandler *handler.ProductHandler
	profileHandler *handler.ProfileHandler
	shareHandler   *handler.ShareHandler
	statsHandler   *handler.StatsHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		catalogHandler: params.CatalogHandler,
		storeHandler:   params.StoreHandler,
		productHandler: params.ProductHandler,
		profileHandler: params.ProfileHandler,
		shareHandler:   params.ShareHandler,
		statsHandler:   params.StatsHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/google", r.userHandler.LoginWithGoogle)
		authGroup.POST("/refresh", r.userHandler.Refresh)
		authGroup.POST("/logout", r.userHandler.Logout)
		authGroup.POST("/logout-all", r.userHandler.LogoutAll, r.authMiddleware.Authenticate)
	}

	// Public catalog, share and stats routes. Fixed paths are registered
	// before the /:id parameter routes.
	storesGroup := e.Group("/tiendas")
	{
		storesGroup.GET("", r.catalogHandler.BrowseStores)
		storesGroup.GET("/cercanas", r.catalogHandler.NearbyStores)
		storesGroup.GET("/:id", r.catalogHandler.GetStore)
		storesGroup.GET("/:id/productos", r.productHandler.ListByStore)
		storesGroup.GET("/:id/productos/:productId", r.productHandler.GetProduct)
		storesGroup.GET("/:id/productos/:productId/relacionados", r.productHandler.RelatedProducts)
		storesGroup.GET("/:id/qr", r.shareHandler.StoreQR)
		storesGroup.GET("/:id/flyer", r.shareHandler.StoreFlyer)
		storesGroup.POST("/:id/eventos", r.statsHandler.RecordEvent)
	}

	e.GET("/productos/recientes", r.productHandler.LatestProducts)
	e.GET("/planes", r.storeHandler.Plans)

	// Profile routes for the authenticated user
	profileGroup := e.Group("/perfil")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.UpdateProfile)
		profileGroup.POST("/foto", r.profileHandler.UploadPhoto)
	}

	// Store ownership routes. Creation only requires a session because the
	// first store is what grants the merchant role; every other mutation
	// additionally requires it. Ownership itself is enforced in the
	// usecases against the store record.
	myStoresGroup := e.Group("/mis-tiendas")
	myStoresGroup.Use(r.authMiddleware.Authenticate)
	{
		myStoresGroup.GET("", r.storeHandler.GetMyStores)
		myStoresGroup.POST("", r.storeHandler.CreateStore)
		myStoresGroup.POST("/validar-codigo", r.storeHandler.ValidateIncubatorCode)
	}

	merchantGroup := e.Group("/mis-tiendas")
	merchantGroup.Use(r.authMiddleware.Authenticate)
	merchantGroup.Use(r.authMiddleware.RequireRole(entity.RoleMerchant))
	{
		merchantGroup.PUT("/:id", r.storeHandler.UpdateStore)
		merchantGroup.POST("/:id/imagenes", r.storeHandler.UploadCoverImage)
		merchantGroup.DELETE("/:id/imagenes/:filename", r.storeHandler.RemoveCoverImage)
		merchantGroup.POST("/:id/renovar", r.storeHandler.RenewPlan)
		merchantGroup.POST("/:id/productos", r.productHandler.AddProduct)
		merchantGroup.PUT("/:id/productos/:productId", r.productHandler.UpdateProduct)
		merchantGroup.DELETE("/:id/productos/:productId", r.productHandler.DeleteProduct)
	}
}
