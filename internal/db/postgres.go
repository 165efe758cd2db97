package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mvaldebenito/gamestore-backend/internal/logger"
	"github.com/mvaldebenito/gamestore-backend/internal/types"
	"github.com/mvaldebenito/gamestore-backend/internal/utils"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	log.Info("Loading environment variables...")
	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "gamestore", log)
	log.Debug("Environment variables loaded")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	log.Info("Connecting to Postgres...")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	err := s.db.AutoMigrate(AllModels()...)
	if err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}

	// Catalog names are unique case-insensitively; AutoMigrate cannot express
	// expression indexes, so they are created here.
	s.log.Info("Creating case-insensitive unique name indexes...")
	for _, table := range catalogTables {
		stmt := fmt.Sprintf(
			`CREATE UNIQUE INDEX IF NOT EXISTS ux_%s_name ON %q (LOWER(name))`,
			table, table,
		)
		if err := s.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create unique name index on %s: %w", table, err)
		}
	}

	// The delete guard gives the friendly conflict message, but it cannot see
	// a dependent committed after its count ran. The foreign keys reject that
	// race at commit time.
	s.log.Info("Creating foreign key constraints...")
	for _, fk := range foreignKeys {
		name := fmt.Sprintf("fk_%s_%s", fk.Table, fk.Column)
		drop := fmt.Sprintf(`ALTER TABLE %q DROP CONSTRAINT IF EXISTS %s`, fk.Table, name)
		if err := s.db.Exec(drop).Error; err != nil {
			return fmt.Errorf("failed to drop constraint %s: %w", name, err)
		}
		add := fmt.Sprintf(
			`ALTER TABLE %q ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %q (id) ON DELETE %s`,
			fk.Table, name, fk.Column, fk.RefTable, fk.OnDelete,
		)
		if err := s.db.Exec(add).Error; err != nil {
			return fmt.Errorf("failed to create constraint %s: %w", name, err)
		}
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}

var catalogTables = []string{
	"genre",
	"platform",
	"developer",
	"developer_type",
	"company",
	"company_type",
	"classification",
	"product_type",
	"shipping_method",
	"payment_method",
	"status",
	"region",
}

type foreignKey struct {
	Table    string
	Column   string
	RefTable string
	OnDelete string
}

// Sale items are owned by their sale so that edge cascades; every other
// reference restricts, backing the delete guard.
var foreignKeys = []foreignKey{
	{Table: "comuna", Column: "region_id", RefTable: "region", OnDelete: "RESTRICT"},
	{Table: "address", Column: "user_id", RefTable: "user", OnDelete: "RESTRICT"},
	{Table: "address", Column: "comuna_id", RefTable: "comuna", OnDelete: "RESTRICT"},
	{Table: "product", Column: "product_type_id", RefTable: "product_type", OnDelete: "RESTRICT"},
	{Table: "product", Column: "classification_id", RefTable: "classification", OnDelete: "RESTRICT"},
	{Table: "product", Column: "status_id", RefTable: "status", OnDelete: "RESTRICT"},
	{Table: "product_genre", Column: "product_id", RefTable: "product", OnDelete: "RESTRICT"},
	{Table: "product_genre", Column: "genre_id", RefTable: "genre", OnDelete: "RESTRICT"},
	{Table: "product_platform", Column: "product_id", RefTable: "product", OnDelete: "RESTRICT"},
	{Table: "product_platform", Column: "platform_id", RefTable: "platform", OnDelete: "RESTRICT"},
	{Table: "product_developer", Column: "product_id", RefTable: "product", OnDelete: "RESTRICT"},
	{Table: "product_developer", Column: "developer_id", RefTable: "developer", OnDelete: "RESTRICT"},
	{Table: "product_company", Column: "product_id", RefTable: "product", OnDelete: "RESTRICT"},
	{Table: "product_company", Column: "company_id", RefTable: "company", OnDelete: "RESTRICT"},
	{Table: "company_company_type", Column: "company_id", RefTable: "company", OnDelete: "RESTRICT"},
	{Table: "company_company_type", Column: "company_type_id", RefTable: "company_type", OnDelete: "RESTRICT"},
	{Table: "developer_developer_type", Column: "developer_id", RefTable: "developer", OnDelete: "RESTRICT"},
	{Table: "developer_developer_type", Column: "developer_type_id", RefTable: "developer_type", OnDelete: "RESTRICT"},
	{Table: "sale", Column: "user_id", RefTable: "user", OnDelete: "RESTRICT"},
	{Table: "sale", Column: "payment_method_id", RefTable: "payment_method", OnDelete: "RESTRICT"},
	{Table: "sale", Column: "shipping_method_id", RefTable: "shipping_method", OnDelete: "RESTRICT"},
	{Table: "sale", Column: "status_id", RefTable: "status", OnDelete: "RESTRICT"},
	{Table: "sale_item", Column: "sale_id", RefTable: "sale", OnDelete: "CASCADE"},
	{Table: "sale_item", Column: "product_id", RefTable: "product", OnDelete: "RESTRICT"},
}

// AllModels lists every persisted model in dependency order; the test
// harness migrates the same set against sqlite.
func AllModels() []interface{} {
	return []interface{}{
		&types.Genre{},
		&types.Platform{},
		&types.Developer{},
		&types.DeveloperType{},
		&types.Company{},
		&types.CompanyType{},
		&types.Classification{},
		&types.ProductType{},
		&types.ShippingMethod{},
		&types.PaymentMethod{},
		&types.Status{},
		&types.Region{},
		&types.Comuna{},
		&types.User{},
		&types.Address{},
		&types.Product{},
		&types.ProductGenreLink{},
		&types.ProductPlatformLink{},
		&types.ProductDeveloperLink{},
		&types.ProductCompanyLink{},
		&types.CompanyCompanyTypeLink{},
		&types.DeveloperDeveloperTypeLink{},
		&types.Sale{},
		&types.SaleItem{},
	}
}
