// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"eventsathi/internal/delivery/http/middleware"
	"eventsathi/internal/delivery/http/router/handler"
	"eventsathi/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CustomerHandler *handler.CustomerHandler
	VendorHandler   *handler.VendorHandler
	ImageHandler    *handler.ImageHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
	RateLimit       *middleware.RateLimitMiddleware
	Registry        *prometheus.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.params.Registry, promhttp.HandlerOpts{})))

	// Credential endpoints are rate limited per client IP.
	authGroup := e.Group("/auth")
	authGroup.Use(r.params.RateLimit.Handle)
	{
		authGroup.POST("/signup", r.params.AuthHandler.SignUp)
		authGroup.POST("/signin", r.params.AuthHandler.SignIn)
		authGroup.POST("/refresh", r.params.AuthHandler.Refresh)
		// Sign-out resolves the session when it can but never demands one;
		// signing out twice in a row must succeed both times.
		authGroup.POST("/signout", r.params.AuthHandler.SignOut, auth.OptionalAuthenticate)
		authGroup.GET("/me", r.params.AuthHandler.Me, auth.Authenticate)
		authGroup.GET("/status", r.params.AuthHandler.Status, auth.OptionalAuthenticate)
	}

	customerGroup := e.Group("/customers")
	customerGroup.Use(auth.Authenticate)
	customerGroup.Use(auth.RequireRole(entity.RoleCustomer))
	{
		customerGroup.GET("/profile", r.params.CustomerHandler.GetProfile)
		customerGroup.PUT("/profile", r.params.CustomerHandler.UpdateProfile)
	}

	vendorGroup := e.Group("/vendors")
	vendorGroup.Use(auth.Authenticate)
	vendorGroup.Use(auth.RequireRole(entity.RoleVendor))
	{
		vendorGroup.GET("/profile", r.params.VendorHandler.GetProfile)
		vendorGroup.PUT("/profile", r.params.VendorHandler.UpdateProfile)
	}

	imageGroup := e.Group("/images")
	imageGroup.Use(auth.Authenticate)
	imageGroup.Use(auth.RequireRole(entity.RoleVendor))
	{
		imageGroup.POST("/vendor/upload", r.params.ImageHandler.Upload)
		imageGroup.GET("/vendor", r.params.ImageHandler.List)
		imageGroup.DELETE("/:id", r.params.ImageHandler.Delete)
	}

	adminGroup := e.Group("/admin")
	adminGroup.Use(auth.Authenticate)
	adminGroup.Use(auth.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/users", r.params.AdminHandler.ListUsers)
	}
}
