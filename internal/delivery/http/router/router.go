// Package router contains routing setup for the HTTP delivery.
package router

import (
	"quill/internal/delivery/http/middleware"
	"quill/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware the router wires up.
type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	BlogHandler    *handler.BlogHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	blogHandler    *handler.BlogHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		blogHandler:    params.BlogHandler,
		userHandler:    params.UserHandler,
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
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Blog routes; reads are public, /me and mutations need a token.
	blogGroup := e.Group("/blogs")
	{
		blogGroup.GET("", r.blogHandler.ListPublished)
		blogGroup.GET("/me", r.blogHandler.ListOwn, r.authMiddleware.Authenticate)
		blogGroup.GET("/:id", r.blogHandler.Get)
		blogGroup.POST("", r.blogHandler.Create, r.authMiddleware.Authenticate)
		blogGroup.PATCH("/:id", r.blogHandler.Update, r.authMiddleware.Authenticate)
		blogGroup.DELETE("/:id", r.blogHandler.Delete, r.authMiddleware.Authenticate)
	}

	// Profile routes
	userGroup := e.Group("/users")
	{
		userGroup.PATCH("/me", r.userHandler.UpdateUsername, r.authMiddleware.Authenticate)
		userGroup.GET("/:id", r.userHandler.Get)
	}
}
