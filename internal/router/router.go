package router // package router defines how HTTP routes are registered for the API

import (
	"strings"

	"github.com/labstack/echo/v4"            // the Echo web framework handles routing
	echomw "github.com/labstack/echo/v4/middleware" // Echo's bundled middleware (static hosting)
	"github.com/redis/go-redis/v9"

	"github.com/Harshhjs/farmconnect/internal/config"
	"github.com/Harshhjs/farmconnect/internal/handler"
	"github.com/Harshhjs/farmconnect/internal/middleware"
	"github.com/Harshhjs/farmconnect/internal/model"
)

// Handlers collects every handler the route table needs. Wiring them once
// here keeps the guard requirements of each endpoint in a single place.
type Handlers struct {
	Auth     *handler.AuthHandler
	Products *handler.ProductHandler
	Users    *handler.UserHandler
	Contacts *handler.ContactHandler
	Stats    *handler.StatsHandler
	Weather  *handler.WeatherHandler
}

// Register wires the full HTTP surface onto e, grouped by guard tier:
// public, authenticated, farmer-or-admin and admin. The redis client may be
// nil, which disables rate limiting.
func Register(e *echo.Echo, cfg config.Config, rdb *redis.Client, h Handlers) {
	e.GET("/healthz", handler.Health)

	// Public endpoints. The auth pair additionally sits behind the rate
	// limiter since it is the obvious brute-force target.
	limited := e.Group("/api/auth", middleware.RateLimit(config.LoadRateLimitConfig(), rdb))
	limited.POST("/register", h.Auth.Register)
	limited.POST("/login", h.Auth.Login)

	e.GET("/api/products", h.Products.List)
	e.POST("/api/contact", h.Contacts.Submit)
	e.GET("/api/weather", h.Weather.Get)

	// Any authenticated identity.
	authed := e.Group("/api", middleware.JWTAuth(cfg.JWTSecret))
	authed.GET("/auth/me", h.Auth.Me)
	authed.PUT("/auth/profile", h.Auth.UpdateProfile)
	authed.PUT("/auth/password", h.Auth.ChangePassword)
	authed.GET("/stats", h.Stats.Get)

	// Farmer or admin; update and delete additionally check ownership
	// inside the handler.
	farmer := e.Group("/api/products",
		middleware.JWTAuth(cfg.JWTSecret),
		middleware.RequireRole(model.RoleFarmer, model.RoleAdmin))
	farmer.GET("/my", h.Products.Mine)
	farmer.POST("", h.Products.Create)
	farmer.PUT("/:id", h.Products.Update)
	farmer.DELETE("/:id", h.Products.Delete)

	// Admin only.
	admin := e.Group("/api",
		middleware.JWTAuth(cfg.JWTSecret),
		middleware.RequireRole(model.RoleAdmin))
	admin.GET("/contacts", h.Contacts.List)
	admin.GET("/users", h.Users.List)
	admin.POST("/users", h.Users.Create)
	admin.PUT("/users/:id/status", h.Users.SetStatus)
	admin.PUT("/users/:id/verify", h.Users.ToggleVerified)
	admin.DELETE("/users/:id", h.Users.Delete)

	// Everything else serves the static front end, with index.html as the
	// SPA fallback for client-side routes.
	e.Use(echomw.StaticWithConfig(echomw.StaticConfig{
		Root:  cfg.StaticDir,
		HTML5: true,
		Skipper: func(c echo.Context) bool {
			p := c.Request().URL.Path
			return strings.HasPrefix(p, "/api") || p == "/healthz"
		},
	}))
}
