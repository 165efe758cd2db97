package app

import (
	"github.com/mvaldebenito/gamestore-backend/internal/handlers"
	"github.com/mvaldebenito/gamestore-backend/internal/logger"
	"github.com/mvaldebenito/gamestore-backend/internal/types"
)

type Handlers struct {
	Auth *handlers.AuthHandler
	User *handlers.UserHandler

	Genre          *handlers.CatalogHandler[types.Genre, *types.Genre]
	Platform       *handlers.CatalogHandler[types.Platform, *types.Platform]
	Developer      *handlers.CatalogHandler[types.Developer, *types.Developer]
	DeveloperType  *handlers.CatalogHandler[types.DeveloperType, *types.DeveloperType]
	Company        *handlers.CatalogHandler[types.Company, *types.Company]
	CompanyType    *handlers.CatalogHandler[types.CompanyType, *types.CompanyType]
	Classification *handlers.CatalogHandler[types.Classification, *types.Classification]
	ProductType    *handlers.CatalogHandler[types.ProductType, *types.ProductType]
	ShippingMethod *handlers.CatalogHandler[types.ShippingMethod, *types.ShippingMethod]
	PaymentMethod  *handlers.CatalogHandler[types.PaymentMethod, *types.PaymentMethod]
	Status         *handlers.CatalogHandler[types.Status, *types.Status]
	Region         *handlers.CatalogHandler[types.Region, *types.Region]

	ProductGenre           *handlers.LinkHandler[types.ProductGenreLink]
	ProductPlatform        *handlers.LinkHandler[types.ProductPlatformLink]
	ProductDeveloper       *handlers.LinkHandler[types.ProductDeveloperLink]
	ProductCompany         *handlers.LinkHandler[types.ProductCompanyLink]
	CompanyCompanyType     *handlers.LinkHandler[types.CompanyCompanyTypeLink]
	DeveloperDeveloperType *handlers.LinkHandler[types.DeveloperDeveloperTypeLink]

	Comuna  *handlers.ComunaHandler
	Address *handlers.AddressHandler
	Product *handlers.ProductHandler
	Sale    *handlers.SaleHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth: handlers.NewAuthHandler(services.Auth),
		User: handlers.NewUserHandler(services.User),

		Genre:          handlers.NewCatalogHandler(services.Genre),
		Platform:       handlers.NewCatalogHandler(services.Platform),
		Developer:      handlers.NewCatalogHandler(services.Developer),
		DeveloperType:  handlers.NewCatalogHandler(services.DeveloperType),
		Company:        handlers.NewCatalogHandler(services.Company),
		CompanyType:    handlers.NewCatalogHandler(services.CompanyType),
		Classification: handlers.NewCatalogHandler(services.Classification),
		ProductType:    handlers.NewCatalogHandler(services.ProductType),
		ShippingMethod: handlers.NewCatalogHandler(services.ShippingMethod),
		PaymentMethod:  handlers.NewCatalogHandler(services.PaymentMethod),
		Status:         handlers.NewCatalogHandler(services.Status),
		Region:         handlers.NewCatalogHandler(services.Region),

		ProductGenre:           handlers.NewLinkHandler(services.ProductGenre),
		ProductPlatform:        handlers.NewLinkHandler(services.ProductPlatform),
		ProductDeveloper:       handlers.NewLinkHandler(services.ProductDeveloper),
		ProductCompany:         handlers.NewLinkHandler(services.ProductCompany),
		CompanyCompanyType:     handlers.NewLinkHandler(services.CompanyCompanyType),
		DeveloperDeveloperType: handlers.NewLinkHandler(services.DeveloperDeveloperType),

		Comuna:  handlers.NewComunaHandler(services.Comuna),
		Address: handlers.NewAddressHandler(services.Address),
		Product: handlers.NewProductHandler(services.Product),
		Sale:    handlers.NewSaleHandler(services.Sale, services.SaleItem),
	}
}
