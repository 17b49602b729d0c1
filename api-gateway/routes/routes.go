package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yealoro/shop-cart-sub000/api-gateway/config"
	"github.com/yealoro/shop-cart-sub000/api-gateway/proxy"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix      string
	ServiceName string
	Description string
}

// Routes holds all route definitions. Authentication is enforced by the
// catalog service itself, so the gateway only forwards.
var Routes = []RouteDefinition{
	{
		Prefix:      "/api/products",
		ServiceName: "catalog",
		Description: "Products with variants, images, reviews, stock and price",
	},
	{
		Prefix:      "/api/categories",
		ServiceName: "catalog",
		Description: "Category tree",
	},
	{
		Prefix:      "/api/promotions",
		ServiceName: "catalog",
		Description: "Time-windowed promotions",
	},
	{
		Prefix:      "/api/variants",
		ServiceName: "catalog",
		Description: "Variant updates and deletes",
	},
	{
		Prefix:      "/api/images",
		ServiceName: "catalog",
		Description: "Image updates and deletes",
	},
	{
		Prefix:      "/api/admin",
		ServiceName: "catalog",
		Description: "Admin login",
	},
	{
		Prefix:      "/uploads",
		ServiceName: "catalog",
		Description: "Materialized product images",
	},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig) {
	reverseProxy := proxy.NewReverseProxy(cfg)

	// Liveness probe for the gateway itself
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// Catalog health, proxied
	app.Get("/health", func(c *fiber.Ctx) error {
		return reverseProxy.ProxyRequest(c, "catalog")
	})

	// API routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Catalog API Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	for _, route := range Routes {
		registerServiceRoutes(app, route, reverseProxy)
	}
}

// registerServiceRoutes registers all HTTP methods for a service prefix
func registerServiceRoutes(app *fiber.App, route RouteDefinition, proxyHandler *proxy.ReverseProxy) {
	handler := func(c *fiber.Ctx) error {
		return proxyHandler.ProxyRequest(c, route.ServiceName)
	}

	group := app.Group(route.Prefix)
	group.All("/*", handler)

	// Also handle the exact prefix path (without /*)
	app.All(route.Prefix, handler)
}
