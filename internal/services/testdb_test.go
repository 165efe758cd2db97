package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mvaldebenito/gamestore-backend/internal/db"
	"github.com/mvaldebenito/gamestore-backend/internal/logger"
	"github.com/mvaldebenito/gamestore-backend/internal/repos"
	"github.com/mvaldebenito/gamestore-backend/internal/types"
)

// testEnv wires the full service graph against an in-memory sqlite database,
// the same shape the app wires against postgres.
type testEnv struct {
	db *gorm.DB

	genres          CatalogService[types.Genre, *types.Genre]
	platforms       CatalogService[types.Platform, *types.Platform]
	regions         CatalogService[types.Region, *types.Region]
	productTypes    CatalogService[types.ProductType, *types.ProductType]
	classifications CatalogService[types.Classification, *types.Classification]
	statuses        CatalogService[types.Status, *types.Status]
	paymentMethods  CatalogService[types.PaymentMethod, *types.PaymentMethod]
	shippingMethods CatalogService[types.ShippingMethod, *types.ShippingMethod]

	productGenres LinkService[types.ProductGenreLink]

	comunas   ComunaService
	users     UserService
	addresses AddressService
	products  ProductService
	sales     SaleService
	saleItems SaleItemService
	auth      AuthService

	productRepo  repos.ProductRepo
	saleRepo     repos.SaleRepo
	saleItemRepo repos.SaleItemRepo
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// Transactions must land on the same in-memory database.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(db.AllModels()...))
	return gdb
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gdb := setupTestDB(t)
	log, err := logger.New("development")
	require.NoError(t, err)

	genreRepo := repos.NewCatalogRepo[types.Genre](gdb, log, "genre")
	platformRepo := repos.NewCatalogRepo[types.Platform](gdb, log, "platform")
	regionRepo := repos.NewCatalogRepo[types.Region](gdb, log, "region")
	productTypeRepo := repos.NewCatalogRepo[types.ProductType](gdb, log, "product type")
	classificationRepo := repos.NewCatalogRepo[types.Classification](gdb, log, "classification")
	statusRepo := repos.NewCatalogRepo[types.Status](gdb, log, "status")
	paymentMethodRepo := repos.NewCatalogRepo[types.PaymentMethod](gdb, log, "payment method")
	shippingMethodRepo := repos.NewCatalogRepo[types.ShippingMethod](gdb, log, "shipping method")

	productGenreRepo := repos.NewLinkRepo[types.ProductGenreLink](
		gdb, log, "product genre", "product_id", "genre_id",
		func(l, r uuid.UUID) *types.ProductGenreLink {
			return &types.ProductGenreLink{ID: uuid.New(), ProductID: l, GenreID: r}
		})

	comunaRepo := repos.NewComunaRepo(gdb, log)
	userRepo := repos.NewUserRepo(gdb, log)
	addressRepo := repos.NewAddressRepo(gdb, log)
	productRepo := repos.NewProductRepo(gdb, log)
	saleRepo := repos.NewSaleRepo(gdb, log)
	saleItemRepo := repos.NewSaleItemRepo(gdb, log)

	genreGuard := NewDeleteGuard(log, "genre",
		DependentCheck{Label: "products", Count: productGenreRepo.CountByRight},
	)
	regionGuard := NewDeleteGuard(log, "region",
		DependentCheck{Label: "comunas", Count: comunaRepo.CountByRegion},
	)
	productTypeGuard := NewDeleteGuard(log, "product type",
		DependentCheck{Label: "products", Count: func(ctx context.Context, tx *gorm.DB, id uuid.UUID) (int64, error) {
			return productRepo.CountByColumn(ctx, tx, "product_type_id", id)
		}},
	)
	comunaGuard := NewDeleteGuard(log, "comuna",
		DependentCheck{Label: "addresses", Count: addressRepo.CountByComuna},
	)
	productGuard := NewDeleteGuard(log, "product",
		DependentCheck{Label: "sale items", Count: saleItemRepo.CountByProduct},
		DependentCheck{Label: "genre links", Count: productGenreRepo.CountByLeft},
	)
	userGuard := NewDeleteGuard(log, "user",
		DependentCheck{Label: "sales", Count: saleRepo.CountByUser},
		DependentCheck{Label: "addresses", Count: addressRepo.CountByUser},
	)

	userService := NewUserService(gdb, log, userRepo, userGuard)
	saleItemService := NewSaleItemService(gdb, log, saleRepo, saleItemRepo, productRepo)

	return &testEnv{
		db: gdb,

		genres:          NewCatalogService[types.Genre, *types.Genre](gdb, log, genreRepo, "genre", genreGuard),
		platforms:       NewCatalogService[types.Platform, *types.Platform](gdb, log, platformRepo, "platform", nil),
		regions:         NewCatalogService[types.Region, *types.Region](gdb, log, regionRepo, "region", regionGuard),
		productTypes:    NewCatalogService[types.ProductType, *types.ProductType](gdb, log, productTypeRepo, "product type", productTypeGuard),
		classifications: NewCatalogService[types.Classification, *types.Classification](gdb, log, classificationRepo, "classification", nil),
		statuses:        NewCatalogService[types.Status, *types.Status](gdb, log, statusRepo, "status", nil),
		paymentMethods:  NewCatalogService[types.PaymentMethod, *types.PaymentMethod](gdb, log, paymentMethodRepo, "payment method", nil),
		shippingMethods: NewCatalogService[types.ShippingMethod, *types.ShippingMethod](gdb, log, shippingMethodRepo, "shipping method", nil),

		productGenres: NewLinkService[types.ProductGenreLink](gdb, log, productGenreRepo, "product genre",
			ProductResolver(productRepo), CatalogResolver(genreRepo, "genre")),

		comunas:   NewComunaService(gdb, log, comunaRepo, regionRepo, comunaGuard),
		users:     userService,
		addresses: NewAddressService(gdb, log, addressRepo, userRepo, comunaRepo),
		products:  NewProductService(gdb, log, productRepo, productTypeRepo, classificationRepo, statusRepo, productGuard),
		sales:     NewSaleService(gdb, log, saleRepo, saleItemRepo, userRepo, paymentMethodRepo, shippingMethodRepo, statusRepo, saleItemService),
		saleItems: saleItemService,
		auth:      NewAuthService(gdb, log, userRepo, userService, "test-secret", time.Hour),

		productRepo:  productRepo,
		saleRepo:     saleRepo,
		saleItemRepo: saleItemRepo,
	}
}

// Fixture helpers. Each fails the test on error so callers stay linear.

func (env *testEnv) mustProduct(t *testing.T, name string, price float64) *types.Product {
	t.Helper()
	ctx := context.Background()
	productType, err := env.productTypes.Create(ctx, CatalogInput{Name: "type for " + name, Active: true})
	require.NoError(t, err)
	classification, err := env.classifications.Create(ctx, CatalogInput{Name: "classification for " + name, Active: true})
	require.NoError(t, err)
	status, err := env.statuses.Create(ctx, CatalogInput{Name: "status for " + name, Active: true})
	require.NoError(t, err)

	product, err := env.products.Create(ctx, ProductInput{
		Name:             name,
		Price:            price,
		ProductTypeID:    productType.ID,
		ClassificationID: classification.ID,
		StatusID:         status.ID,
		Active:           true,
	})
	require.NoError(t, err)
	return product
}

func (env *testEnv) mustUser(t *testing.T, email string) *types.User {
	t.Helper()
	user, err := env.users.Create(context.Background(), UserInput{
		Email:    email,
		Password: "secret123",
		Active:   true,
	})
	require.NoError(t, err)
	return user
}

type saleRefs struct {
	user           *types.User
	paymentMethod  *types.PaymentMethod
	shippingMethod *types.ShippingMethod
	status         *types.Status
}

func (env *testEnv) mustSaleRefs(t *testing.T, tag string) saleRefs {
	t.Helper()
	ctx := context.Background()
	user := env.mustUser(t, fmt.Sprintf("buyer-%s@example.com", tag))
	paymentMethod, err := env.paymentMethods.Create(ctx, CatalogInput{Name: "payment " + tag, Active: true})
	require.NoError(t, err)
	shippingMethod, err := env.shippingMethods.Create(ctx, CatalogInput{Name: "shipping " + tag, Active: true})
	require.NoError(t, err)
	status, err := env.statuses.Create(ctx, CatalogInput{Name: "sale status " + tag, Active: true})
	require.NoError(t, err)
	return saleRefs{user: user, paymentMethod: paymentMethod, shippingMethod: shippingMethod, status: status}
}
