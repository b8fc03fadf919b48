// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/velobay/bike-rental/internal/config"
	"github.com/velobay/bike-rental/internal/handler"
	"github.com/velobay/bike-rental/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication: the
// public landing page and a health check for load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Home)
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication routes. Register, login,
// refresh and logout live under /v1/auth and are rate limited; /v1/me is
// protected by the JWT middleware.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, rdb *redis.Client) {
	g := e.Group("/v1/auth")
	g.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	// Logout accepts either a bearer token or a refresh token in the body,
	// so it stays outside the JWT middleware.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterCatalog registers the protected catalog listings and the
// authenticated landing view. Listings are cached through Redis when a
// client is available.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, jwtSecret string, rdb *redis.Client) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))

	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	g.GET("/bikes", h.ListBikes, cache)
	g.GET("/parts", h.ListParts, cache)
	g.GET("/overview", h.Overview)
}

// RegisterRental registers the reservation workflow: booking quote,
// rental submission, confirmation view and rental history. All routes
// require a valid access token.
func RegisterRental(e *echo.Echo, h *handler.RentalHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))

	g.GET("/rent", h.Quote)
	g.POST("/rent", h.Rent)
	g.GET("/thank_you", h.ThankYou)
	g.GET("/rentals", h.ListRentals)
}
