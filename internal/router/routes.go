package router

import (
	"github.com/labstack/echo/v4"

	"github.com/octobees/product-advisor/internal/config"
	"github.com/octobees/product-advisor/internal/handler"
	middlewarepkg "github.com/octobees/product-advisor/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Search *handler.SearchHandler
}

// Register wires all HTTP routes for the web front-end.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/", handler.Home)
	e.GET("/healthz", handler.Health)
	e.POST("/api/search", handlers.Search.Search, middlewarepkg.SearchRateLimiter(cfg.RateLimitSearch))
}
