// Package router contains routing setup for the API delivery.
package router

import (
	"vintagecomics/internal/delivery/api/middleware"
	"vintagecomics/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware the router registers,
// injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	ProductHandler    *handler.ProductHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	productHandler    *handler.ProductHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		productHandler:    params.ProductHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account and session routes
	usersGroup := e.Group("/users")
	{
		usersGroup.POST("/signup", r.userHandler.Signup)
		usersGroup.POST("/login", r.userHandler.Login)
		usersGroup.POST("/logout", r.userHandler.Logout)

		// getSession requires an active session
		usersGroup.GET("/getSession", r.userHandler.GetSession, r.sessionMiddleware.Authenticate)
	}

	// Catalog and checkout routes
	productsGroup := e.Group("/products")
	{
		productsGroup.GET("/all", r.productHandler.GetAllProducts)

		// Purchase requires an active session; registered before the :id
		// route for clarity even though echo matches static paths first.
		productsGroup.POST("/purchase", r.productHandler.Purchase, r.sessionMiddleware.Authenticate)

		productsGroup.GET("/:id", r.productHandler.GetProduct)
	}
}
