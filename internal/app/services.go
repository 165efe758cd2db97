package app

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mvaldebenito/gamestore-backend/internal/logger"
	"github.com/mvaldebenito/gamestore-backend/internal/services"
	"github.com/mvaldebenito/gamestore-backend/internal/types"
)

type Services struct {
	Auth services.AuthService
	User services.UserService

	Genre          services.CatalogService[types.Genre, *types.Genre]
	Platform       services.CatalogService[types.Platform, *types.Platform]
	Developer      services.CatalogService[types.Developer, *types.Developer]
	DeveloperType  services.CatalogService[types.DeveloperType, *types.DeveloperType]
	Company        services.CatalogService[types.Company, *types.Company]
	CompanyType    services.CatalogService[types.CompanyType, *types.CompanyType]
	Classification services.CatalogService[types.Classification, *types.Classification]
	ProductType    services.CatalogService[types.ProductType, *types.ProductType]
	ShippingMethod services.CatalogService[types.ShippingMethod, *types.ShippingMethod]
	PaymentMethod  services.CatalogService[types.PaymentMethod, *types.PaymentMethod]
	Status         services.CatalogService[types.Status, *types.Status]
	Region         services.CatalogService[types.Region, *types.Region]

	ProductGenre           services.LinkService[types.ProductGenreLink]
	ProductPlatform        services.LinkService[types.ProductPlatformLink]
	ProductDeveloper       services.LinkService[types.ProductDeveloperLink]
	ProductCompany         services.LinkService[types.ProductCompanyLink]
	CompanyCompanyType     services.LinkService[types.CompanyCompanyTypeLink]
	DeveloperDeveloperType services.LinkService[types.DeveloperDeveloperTypeLink]

	Comuna   services.ComunaService
	Address  services.AddressService
	Product  services.ProductService
	Sale     services.SaleService
	SaleItem services.SaleItemService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos) (Services, error) {
	log.Info("Wiring services...")

	countProductsBy := func(column string) func(ctx context.Context, tx *gorm.DB, id uuid.UUID) (int64, error) {
		return func(ctx context.Context, tx *gorm.DB, id uuid.UUID) (int64, error) {
			return r.Product.CountByColumn(ctx, tx, column, id)
		}
	}
	countSalesBy := func(column string) func(ctx context.Context, tx *gorm.DB, id uuid.UUID) (int64, error) {
		return func(ctx context.Context, tx *gorm.DB, id uuid.UUID) (int64, error) {
			return r.Sale.CountByColumn(ctx, tx, column, id)
		}
	}

	// Every delete goes through a guard listing whatever still references the
	// record. Checks run inside the delete transaction.
	genreGuard := services.NewDeleteGuard(log, "genre",
		services.DependentCheck{Label: "products", Count: r.ProductGenre.CountByRight},
	)
	platformGuard := services.NewDeleteGuard(log, "platform",
		services.DependentCheck{Label: "products", Count: r.ProductPlatform.CountByRight},
	)
	developerGuard := services.NewDeleteGuard(log, "developer",
		services.DependentCheck{Label: "products", Count: r.ProductDeveloper.CountByRight},
		services.DependentCheck{Label: "developer type links", Count: r.DeveloperDeveloperType.CountByLeft},
	)
	developerTypeGuard := services.NewDeleteGuard(log, "developer type",
		services.DependentCheck{Label: "developers", Count: r.DeveloperDeveloperType.CountByRight},
	)
	companyGuard := services.NewDeleteGuard(log, "company",
		services.DependentCheck{Label: "products", Count: r.ProductCompany.CountByRight},
		services.DependentCheck{Label: "company type links", Count: r.CompanyCompanyType.CountByLeft},
	)
	companyTypeGuard := services.NewDeleteGuard(log, "company type",
		services.DependentCheck{Label: "companies", Count: r.CompanyCompanyType.CountByRight},
	)
	classificationGuard := services.NewDeleteGuard(log, "classification",
		services.DependentCheck{Label: "products", Count: countProductsBy("classification_id")},
	)
	productTypeGuard := services.NewDeleteGuard(log, "product type",
		services.DependentCheck{Label: "products", Count: countProductsBy("product_type_id")},
	)
	shippingMethodGuard := services.NewDeleteGuard(log, "shipping method",
		services.DependentCheck{Label: "sales", Count: countSalesBy("shipping_method_id")},
	)
	paymentMethodGuard := services.NewDeleteGuard(log, "payment method",
		services.DependentCheck{Label: "sales", Count: countSalesBy("payment_method_id")},
	)
	statusGuard := services.NewDeleteGuard(log, "status",
		services.DependentCheck{Label: "products", Count: countProductsBy("status_id")},
		services.DependentCheck{Label: "sales", Count: countSalesBy("status_id")},
	)
	regionGuard := services.NewDeleteGuard(log, "region",
		services.DependentCheck{Label: "comunas", Count: r.Comuna.CountByRegion},
	)
	comunaGuard := services.NewDeleteGuard(log, "comuna",
		services.DependentCheck{Label: "addresses", Count: r.Address.CountByComuna},
	)
	productGuard := services.NewDeleteGuard(log, "product",
		services.DependentCheck{Label: "sale items", Count: r.SaleItem.CountByProduct},
		services.DependentCheck{Label: "genre links", Count: r.ProductGenre.CountByLeft},
		services.DependentCheck{Label: "platform links", Count: r.ProductPlatform.CountByLeft},
		services.DependentCheck{Label: "developer links", Count: r.ProductDeveloper.CountByLeft},
		services.DependentCheck{Label: "company links", Count: r.ProductCompany.CountByLeft},
	)
	userGuard := services.NewDeleteGuard(log, "user",
		services.DependentCheck{Label: "sales", Count: r.Sale.CountByUser},
		services.DependentCheck{Label: "addresses", Count: r.Address.CountByUser},
	)

	genreService := services.NewCatalogService[types.Genre, *types.Genre](db, log, r.Genre, "genre", genreGuard)
	platformService := services.NewCatalogService[types.Platform, *types.Platform](db, log, r.Platform, "platform", platformGuard)
	developerService := services.NewCatalogService[types.Developer, *types.Developer](db, log, r.Developer, "developer", developerGuard)
	developerTypeService := services.NewCatalogService[types.DeveloperType, *types.DeveloperType](db, log, r.DeveloperType, "developer type", developerTypeGuard)
	companyService := services.NewCatalogService[types.Company, *types.Company](db, log, r.Company, "company", companyGuard)
	companyTypeService := services.NewCatalogService[types.CompanyType, *types.CompanyType](db, log, r.CompanyType, "company type", companyTypeGuard)
	classificationService := services.NewCatalogService[types.Classification, *types.Classification](db, log, r.Classification, "classification", classificationGuard)
	productTypeService := services.NewCatalogService[types.ProductType, *types.ProductType](db, log, r.ProductType, "product type", productTypeGuard)
	shippingMethodService := services.NewCatalogService[types.ShippingMethod, *types.ShippingMethod](db, log, r.ShippingMethod, "shipping method", shippingMethodGuard)
	paymentMethodService := services.NewCatalogService[types.PaymentMethod, *types.PaymentMethod](db, log, r.PaymentMethod, "payment method", paymentMethodGuard)
	statusService := services.NewCatalogService[types.Status, *types.Status](db, log, r.Status, "status", statusGuard)
	regionService := services.NewCatalogService[types.Region, *types.Region](db, log, r.Region, "region", regionGuard)

	resolveGenre := services.CatalogResolver(r.Genre, "genre")
	resolvePlatform := services.CatalogResolver(r.Platform, "platform")
	resolveDeveloper := services.CatalogResolver(r.Developer, "developer")
	resolveDeveloperType := services.CatalogResolver(r.DeveloperType, "developer type")
	resolveCompany := services.CatalogResolver(r.Company, "company")
	resolveCompanyType := services.CatalogResolver(r.CompanyType, "company type")
	resolveProduct := services.ProductResolver(r.Product)

	productGenreService := services.NewLinkService[types.ProductGenreLink](db, log, r.ProductGenre, "product genre", resolveProduct, resolveGenre)
	productPlatformService := services.NewLinkService[types.ProductPlatformLink](db, log, r.ProductPlatform, "product platform", resolveProduct, resolvePlatform)
	productDeveloperService := services.NewLinkService[types.ProductDeveloperLink](db, log, r.ProductDeveloper, "product developer", resolveProduct, resolveDeveloper)
	productCompanyService := services.NewLinkService[types.ProductCompanyLink](db, log, r.ProductCompany, "product company", resolveProduct, resolveCompany)
	companyCompanyTypeService := services.NewLinkService[types.CompanyCompanyTypeLink](db, log, r.CompanyCompanyType, "company company type", resolveCompany, resolveCompanyType)
	developerDeveloperTypeService := services.NewLinkService[types.DeveloperDeveloperTypeLink](db, log, r.DeveloperDeveloperType, "developer developer type", resolveDeveloper, resolveDeveloperType)

	comunaService := services.NewComunaService(db, log, r.Comuna, r.Region, comunaGuard)
	userService := services.NewUserService(db, log, r.User, userGuard)
	addressService := services.NewAddressService(db, log, r.Address, r.User, r.Comuna)
	productService := services.NewProductService(db, log, r.Product, r.ProductType, r.Classification, r.Status, productGuard)
	saleItemService := services.NewSaleItemService(db, log, r.Sale, r.SaleItem, r.Product)
	saleService := services.NewSaleService(db, log, r.Sale, r.SaleItem, r.User, r.PaymentMethod, r.ShippingMethod, r.Status, saleItemService)
	authService := services.NewAuthService(db, log, r.User, userService, cfg.JWTSecretKey, cfg.AccessTokenTTL)

	return Services{
		Auth: authService,
		User: userService,

		Genre:          genreService,
		Platform:       platformService,
		Developer:      developerService,
		DeveloperType:  developerTypeService,
		Company:        companyService,
		CompanyType:    companyTypeService,
		Classification: classificationService,
		ProductType:    productTypeService,
		ShippingMethod: shippingMethodService,
		PaymentMethod:  paymentMethodService,
		Status:         statusService,
		Region:         regionService,

		ProductGenre:           productGenreService,
		ProductPlatform:        productPlatformService,
		ProductDeveloper:       productDeveloperService,
		ProductCompany:         productCompanyService,
		CompanyCompanyType:     companyCompanyTypeService,
		DeveloperDeveloperType: developerDeveloperTypeService,

		Comuna:   comunaService,
		Address:  addressService,
		Product:  productService,
		Sale:     saleService,
		SaleItem: saleItemService,
	}, nil
}
