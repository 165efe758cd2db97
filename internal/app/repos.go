package app

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mvaldebenito/gamestore-backend/internal/logger"
	"github.com/mvaldebenito/gamestore-backend/internal/repos"
	"github.com/mvaldebenito/gamestore-backend/internal/types"
)

type Repos struct {
	Genre          repos.CatalogRepo[types.Genre]
	Platform       repos.CatalogRepo[types.Platform]
	Developer      repos.CatalogRepo[types.Developer]
	DeveloperType  repos.CatalogRepo[types.DeveloperType]
	Company        repos.CatalogRepo[types.Company]
	CompanyType    repos.CatalogRepo[types.CompanyType]
	Classification repos.CatalogRepo[types.Classification]
	ProductType    repos.CatalogRepo[types.ProductType]
	ShippingMethod repos.CatalogRepo[types.ShippingMethod]
	PaymentMethod  repos.CatalogRepo[types.PaymentMethod]
	Status         repos.CatalogRepo[types.Status]
	Region         repos.CatalogRepo[types.Region]

	ProductGenre           repos.LinkRepo[types.ProductGenreLink]
	ProductPlatform        repos.LinkRepo[types.ProductPlatformLink]
	ProductDeveloper       repos.LinkRepo[types.ProductDeveloperLink]
	ProductCompany         repos.LinkRepo[types.ProductCompanyLink]
	CompanyCompanyType     repos.LinkRepo[types.CompanyCompanyTypeLink]
	DeveloperDeveloperType repos.LinkRepo[types.DeveloperDeveloperTypeLink]

	Comuna   repos.ComunaRepo
	User     repos.UserRepo
	Address  repos.AddressRepo
	Product  repos.ProductRepo
	Sale     repos.SaleRepo
	SaleItem repos.SaleItemRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Genre:          repos.NewCatalogRepo[types.Genre](db, log, "genre"),
		Platform:       repos.NewCatalogRepo[types.Platform](db, log, "platform"),
		Developer:      repos.NewCatalogRepo[types.Developer](db, log, "developer"),
		DeveloperType:  repos.NewCatalogRepo[types.DeveloperType](db, log, "developer type"),
		Company:        repos.NewCatalogRepo[types.Company](db, log, "company"),
		CompanyType:    repos.NewCatalogRepo[types.CompanyType](db, log, "company type"),
		Classification: repos.NewCatalogRepo[types.Classification](db, log, "classification"),
		ProductType:    repos.NewCatalogRepo[types.ProductType](db, log, "product type"),
		ShippingMethod: repos.NewCatalogRepo[types.ShippingMethod](db, log, "shipping method"),
		PaymentMethod:  repos.NewCatalogRepo[types.PaymentMethod](db, log, "payment method"),
		Status:         repos.NewCatalogRepo[types.Status](db, log, "status"),
		Region:         repos.NewCatalogRepo[types.Region](db, log, "region"),

		ProductGenre: repos.NewLinkRepo[types.ProductGenreLink](
			db, log, "product genre", "product_id", "genre_id",
			func(l, r uuid.UUID) *types.ProductGenreLink {
				return &types.ProductGenreLink{ID: uuid.New(), ProductID: l, GenreID: r}
			}),
		ProductPlatform: repos.NewLinkRepo[types.ProductPlatformLink](
			db, log, "product platform", "product_id", "platform_id",
			func(l, r uuid.UUID) *types.ProductPlatformLink {
				return &types.ProductPlatformLink{ID: uuid.New(), ProductID: l, PlatformID: r}
			}),
		ProductDeveloper: repos.NewLinkRepo[types.ProductDeveloperLink](
			db, log, "product developer", "product_id", "developer_id",
			func(l, r uuid.UUID) *types.ProductDeveloperLink {
				return &types.ProductDeveloperLink{ID: uuid.New(), ProductID: l, DeveloperID: r}
			}),
		ProductCompany: repos.NewLinkRepo[types.ProductCompanyLink](
			db, log, "product company", "product_id", "company_id",
			func(l, r uuid.UUID) *types.ProductCompanyLink {
				return &types.ProductCompanyLink{ID: uuid.New(), ProductID: l, CompanyID: r}
			}),
		CompanyCompanyType: repos.NewLinkRepo[types.CompanyCompanyTypeLink](
			db, log, "company company type", "company_id", "company_type_id",
			func(l, r uuid.UUID) *types.CompanyCompanyTypeLink {
				return &types.CompanyCompanyTypeLink{ID: uuid.New(), CompanyID: l, CompanyTypeID: r}
			}),
		DeveloperDeveloperType: repos.NewLinkRepo[types.DeveloperDeveloperTypeLink](
			db, log, "developer developer type", "developer_id", "developer_type_id",
			func(l, r uuid.UUID) *types.DeveloperDeveloperTypeLink {
				return &types.DeveloperDeveloperTypeLink{ID: uuid.New(), DeveloperID: l, DeveloperTypeID: r}
			}),

		Comuna:   repos.NewComunaRepo(db, log),
		User:     repos.NewUserRepo(db, log),
		Address:  repos.NewAddressRepo(db, log),
		Product:  repos.NewProductRepo(db, log),
		Sale:     repos.NewSaleRepo(db, log),
		SaleItem: repos.NewSaleItemRepo(db, log),
	}
}
