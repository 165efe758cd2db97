package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mvaldebenito/gamestore-backend/internal/handlers"
	"github.com/mvaldebenito/gamestore-backend/internal/middleware"
	"github.com/mvaldebenito/gamestore-backend/internal/types"
)

type RouterConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware

	GenreHandler          *handlers.CatalogHandler[types.Genre, *types.Genre]
	PlatformHandler       *handlers.CatalogHandler[types.Platform, *types.Platform]
	DeveloperHandler      *handlers.CatalogHandler[types.Developer, *types.Developer]
	DeveloperTypeHandler  *handlers.CatalogHandler[types.DeveloperType, *types.DeveloperType]
	CompanyHandler        *handlers.CatalogHandler[types.Company, *types.Company]
	CompanyTypeHandler    *handlers.CatalogHandler[types.CompanyType, *types.CompanyType]
	ClassificationHandler *handlers.CatalogHandler[types.Classification, *types.Classification]
	ProductTypeHandler    *handlers.CatalogHandler[types.ProductType, *types.ProductType]
	ShippingMethodHandler *handlers.CatalogHandler[types.ShippingMethod, *types.ShippingMethod]
	PaymentMethodHandler  *handlers.CatalogHandler[types.PaymentMethod, *types.PaymentMethod]
	StatusHandler         *handlers.CatalogHandler[types.Status, *types.Status]
	RegionHandler         *handlers.CatalogHandler[types.Region, *types.Region]

	ProductGenreHandler           *handlers.LinkHandler[types.ProductGenreLink]
	ProductPlatformHandler        *handlers.LinkHandler[types.ProductPlatformLink]
	ProductDeveloperHandler       *handlers.LinkHandler[types.ProductDeveloperLink]
	ProductCompanyHandler         *handlers.LinkHandler[types.ProductCompanyLink]
	CompanyCompanyTypeHandler     *handlers.LinkHandler[types.CompanyCompanyTypeLink]
	DeveloperDeveloperTypeHandler *handlers.LinkHandler[types.DeveloperDeveloperTypeLink]

	ComunaHandler  *handlers.ComunaHandler
	ProductHandler *handlers.ProductHandler
	UserHandler    *handlers.UserHandler
	AddressHandler *handlers.AddressHandler
	SaleHandler    *handlers.SaleHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/api/register", cfg.AuthHandler.Register)
	router.POST("/api/login", cfg.AuthHandler.Login)

	// ===============
	// || Protected ||
	// ===============
	api := router.Group("/api")
	api.Use(cfg.AuthMiddleware.RequireAuth())

	// Catalogs
	cfg.GenreHandler.Register(api, "genres")
	cfg.PlatformHandler.Register(api, "platforms")
	cfg.DeveloperHandler.Register(api, "developers")
	cfg.DeveloperTypeHandler.Register(api, "developer-types")
	cfg.CompanyHandler.Register(api, "companies")
	cfg.CompanyTypeHandler.Register(api, "company-types")
	cfg.ClassificationHandler.Register(api, "classifications")
	cfg.ProductTypeHandler.Register(api, "product-types")
	cfg.ShippingMethodHandler.Register(api, "shipping-methods")
	cfg.PaymentMethodHandler.Register(api, "payment-methods")
	cfg.StatusHandler.Register(api, "statuses")
	cfg.RegionHandler.Register(api, "regions")

	// Bridge relations
	cfg.ProductGenreHandler.Register(api, "product-genres")
	cfg.ProductPlatformHandler.Register(api, "product-platforms")
	cfg.ProductDeveloperHandler.Register(api, "product-developers")
	cfg.ProductCompanyHandler.Register(api, "product-companies")
	cfg.CompanyCompanyTypeHandler.Register(api, "company-company-types")
	cfg.DeveloperDeveloperTypeHandler.Register(api, "developer-developer-types")

	// Comunas
	api.POST("/comunas", cfg.ComunaHandler.Create)
	api.GET("/comunas/:id", cfg.ComunaHandler.GetByID)
	api.PUT("/comunas/:id", cfg.ComunaHandler.Replace)
	api.PATCH("/comunas/:id", cfg.ComunaHandler.Patch)
	api.DELETE("/comunas/:id", cfg.ComunaHandler.Delete)
	api.GET("/regions/:id/comunas", cfg.ComunaHandler.ListByRegion)

	// Products
	api.GET("/products", cfg.ProductHandler.List)
	api.POST("/products", cfg.ProductHandler.Create)
	api.GET("/products/:id", cfg.ProductHandler.GetByID)
	api.PUT("/products/:id", cfg.ProductHandler.Replace)
	api.PATCH("/products/:id", cfg.ProductHandler.Patch)
	api.DELETE("/products/:id", cfg.ProductHandler.Delete)

	// Users
	api.GET("/users", cfg.UserHandler.List)
	api.POST("/users", cfg.UserHandler.Create)
	api.GET("/users/:id", cfg.UserHandler.GetByID)
	api.PUT("/users/:id", cfg.UserHandler.Replace)
	api.PATCH("/users/:id", cfg.UserHandler.Patch)
	api.DELETE("/users/:id", cfg.UserHandler.Delete)

	// Addresses
	api.POST("/addresses", cfg.AddressHandler.Create)
	api.GET("/addresses/:id", cfg.AddressHandler.GetByID)
	api.PUT("/addresses/:id", cfg.AddressHandler.Replace)
	api.PATCH("/addresses/:id", cfg.AddressHandler.Patch)
	api.DELETE("/addresses/:id", cfg.AddressHandler.Delete)
	api.GET("/users/:id/addresses", cfg.AddressHandler.ListByUser)

	// Sales
	api.POST("/sales", cfg.SaleHandler.Create)
	api.GET("/sales/:id", cfg.SaleHandler.GetByID)
	api.PUT("/sales/:id", cfg.SaleHandler.Replace)
	api.PATCH("/sales/:id", cfg.SaleHandler.Patch)
	api.DELETE("/sales/:id", cfg.SaleHandler.Delete)
	api.GET("/users/:id/sales", cfg.SaleHandler.ListByUser)
	api.PATCH("/sale-items/:itemID", cfg.SaleHandler.PatchItem)
	api.DELETE("/sale-items/:itemID", cfg.SaleHandler.DeleteItem)

	return router
}
