// Package router registers the HTTP routes of the booking API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/cinebook/internal/config"
	"github.com/iliyamo/cinebook/internal/handler"
	"github.com/iliyamo/cinebook/internal/middleware"
)

// Deps bundles what the routes need.  Redis may be nil, in which case the
// cache and the rate limiter pass requests through.
type Deps struct {
	Public    *handler.PublicHandler
	Bookings  *handler.BookingHandler
	Operator  *handler.OperatorHandler
	Auth      *handler.AuthHandler
	JWTSecret string
	Redis     *redis.Client
	Cache     config.CacheConfig
	RateLimit config.RateLimitConfig
}

// RegisterRoutes registers routes that need no authentication.
func RegisterRoutes(e *echo.Echo, d Deps) {
	// Liveness probe for load balancers.
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1")
	// Titles and showtimes never change at runtime, so the listing is cached.
	v1.GET("/movies", d.Public.ListMovies, middleware.NewRedisCache(d.Cache, d.Redis))
	// Seat maps change with every commit and are never cached.
	v1.GET("/movies/:movie/showtimes/:showtime/seats", d.Public.GetSeatMap)
	// Commits are rate limited per client and route.
	v1.POST("/movies/:movie/showtimes/:showtime/bookings", d.Bookings.Commit,
		middleware.NewTokenBucket(d.RateLimit, d.Redis))
	// Operator login issues a short-lived access token.
	v1.POST("/auth/login", d.Auth.Login)
}

// RegisterOperator registers the ledger and snapshot endpoints.  All of
// them require a JWT with the OPERATOR role.
func RegisterOperator(e *echo.Echo, d Deps) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(d.JWTSecret),
		middleware.RequireRole(middleware.RoleOperator),
	)
	// ---- Ledger ----
	g.GET("/bookings", d.Operator.ListBookings)
	g.GET("/bookings/:id", d.Operator.GetBooking)

	// ---- Persistence ----
	g.POST("/admin/snapshot", d.Operator.Snapshot)
}

// Register installs every route.
func Register(e *echo.Echo, d Deps) {
	RegisterRoutes(e, d)
	RegisterOperator(e, d)
}
