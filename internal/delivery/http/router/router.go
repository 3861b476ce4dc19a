// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"recipes/internal/delivery/http/middleware"
	"recipes/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RecipeHandler  *handler.RecipeHandler
	AccountHandler *handler.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	recipeHandler  *handler.RecipeHandler
	accountHandler *handler.AccountHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		recipeHandler:  params.RecipeHandler,
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Account routes
	api.POST("/register", r.accountHandler.Register)
	api.POST("/login", r.accountHandler.Login)

	// Reads are public, mutations authenticate per route.
	// The static search route wins over /:id in echo's router.
	recipeGroup := api.Group("/recipe")
	{
		recipeGroup.GET("/search", r.recipeHandler.SearchRecipes)
		recipeGroup.GET("/:id", r.recipeHandler.GetRecipe)
		recipeGroup.POST("/new", r.recipeHandler.CreateRecipe, r.authMiddleware.Authenticate)
		recipeGroup.PUT("/:id", r.recipeHandler.UpdateRecipe, r.authMiddleware.Authenticate)
		recipeGroup.DELETE("/:id", r.recipeHandler.DeleteRecipe, r.authMiddleware.Authenticate)
	}
}
