package app

import (
	"github.com/gin-gonic/gin"

	"github.com/mvaldebenito/gamestore-backend/internal/server"
)

func wireRouter(handlers Handlers, middleware Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AuthHandler:    handlers.Auth,
		AuthMiddleware: middleware.Auth,

		GenreHandler:          handlers.Genre,
		PlatformHandler:       handlers.Platform,
		DeveloperHandler:      handlers.Developer,
		DeveloperTypeHandler:  handlers.DeveloperType,
		CompanyHandler:        handlers.Company,
		CompanyTypeHandler:    handlers.CompanyType,
		ClassificationHandler: handlers.Classification,
		ProductTypeHandler:    handlers.ProductType,
		ShippingMethodHandler: handlers.ShippingMethod,
		PaymentMethodHandler:  handlers.PaymentMethod,
		StatusHandler:         handlers.Status,
		RegionHandler:         handlers.Region,

		ProductGenreHandler:           handlers.ProductGenre,
		ProductPlatformHandler:        handlers.ProductPlatform,
		ProductDeveloperHandler:       handlers.ProductDeveloper,
		ProductCompanyHandler:         handlers.ProductCompany,
		CompanyCompanyTypeHandler:     handlers.CompanyCompanyType,
		DeveloperDeveloperTypeHandler: handlers.DeveloperDeveloperType,

		ComunaHandler:  handlers.Comuna,
		ProductHandler: handlers.Product,
		UserHandler:    handlers.User,
		AddressHandler: handlers.Address,
		SaleHandler:    handlers.Sale,
	})
}
