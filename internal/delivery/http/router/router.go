// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"congo/internal/delivery/http/middleware"
	"congo/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler    *handler.CatalogHandler
	AccountHandler    *handler.AccountHandler
	CartHandler       *handler.CartHandler
	CheckoutHandler   *handler.CheckoutHandler
	SessionMiddleware *middleware.SessionMiddleware
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler    *handler.CatalogHandler
	accountHandler    *handler.AccountHandler
	cartHandler       *handler.CartHandler
	checkoutHandler   *handler.CheckoutHandler
	sessionMiddleware *middleware.SessionMiddleware
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:    params.CatalogHandler,
		accountHandler:    params.AccountHandler,
		cartHandler:       params.CartHandler,
		checkoutHandler:   params.CheckoutHandler,
		sessionMiddleware: params.SessionMiddleware,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Every storefront route gets a cart session id.
	e.Use(r.sessionMiddleware.EnsureSession)

	// Catalog
	e.GET("/", r.catalogHandler.ListProducts)
	e.GET("/product/:id", r.catalogHandler.GetProduct)

	// Accounts
	e.GET("/signup", r.accountHandler.ShowSignup)
	e.POST("/signup", r.accountHandler.Signup)
	e.GET("/login", r.accountHandler.ShowLogin)
	e.POST("/login", r.accountHandler.Login)
	e.GET("/logout", r.accountHandler.Logout)

	// Cart
	e.POST("/add_to_cart/:id", r.cartHandler.AddToCart)
	e.GET("/cart", r.cartHandler.ViewCart)

	// Checkout requires a logged-in user; anonymous visitors are sent to
	// the login page with the checkout path as the return target.
	checkoutGroup := e.Group("/checkout")
	checkoutGroup.Use(r.authMiddleware.RequireLoginRedirect)
	{
		checkoutGroup.GET("", r.checkoutHandler.GetCheckout)
		checkoutGroup.POST("", r.checkoutHandler.PlaceOrder)
	}
}
