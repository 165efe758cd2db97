package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/mvaldebenito/gamestore-backend/internal/apperr"
	"github.com/mvaldebenito/gamestore-backend/internal/logger"
	"github.com/mvaldebenito/gamestore-backend/internal/repos"
	"github.com/mvaldebenito/gamestore-backend/internal/types"
)

type ProductInput struct {
	Name             string
	Description      string
	Price            float64
	ProductTypeID    uuid.UUID
	ClassificationID uuid.UUID
	StatusID         uuid.UUID
	Metadata         datatypes.JSON
	Active           bool
}

type ProductPatch struct {
	Name             *string
	Description      *string
	Price            *float64
	ProductTypeID    *uuid.UUID
	ClassificationID *uuid.UUID
	StatusID         *uuid.UUID
	Metadata         datatypes.JSON
	Active           *bool
}

type ProductService interface {
	Create(ctx context.Context, input ProductInput) (*types.Product, error)
	Replace(ctx context.Context, productID uuid.UUID, input ProductInput) (*types.Product, error)
	Patch(ctx context.Context, productID uuid.UUID, patch ProductPatch) (*types.Product, error)
	Delete(ctx context.Context, productID uuid.UUID) error
	GetByID(ctx context.Context, productID uuid.UUID) (*types.Product, error)
	List(ctx context.Context) ([]*types.Product, error)
}

type productService struct {
	db                 *gorm.DB
	log                *logger.Logger
	productRepo        repos.ProductRepo
	productTypeRepo    repos.CatalogRepo[types.ProductType]
	classificationRepo repos.CatalogRepo[types.Classification]
	statusRepo         repos.CatalogRepo[types.Status]
	guard              *DeleteGuard
}

func NewProductService(
	db *gorm.DB,
	baseLog *logger.Logger,
	productRepo repos.ProductRepo,
	productTypeRepo repos.CatalogRepo[types.ProductType],
	classificationRepo repos.CatalogRepo[types.Classification],
	statusRepo repos.CatalogRepo[types.Status],
	guard *DeleteGuard,
) ProductService {
	serviceLog := baseLog.With("service", "ProductService")
	return &productService{
		db:                 db,
		log:                serviceLog,
		productRepo:        productRepo,
		productTypeRepo:    productTypeRepo,
		classificationRepo: classificationRepo,
		statusRepo:         statusRepo,
		guard:              guard,
	}
}

func (ps *productService) Create(ctx context.Context, input ProductInput) (*types.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperr.NewValidation("name is required")
	}
	if input.Price < 0 {
		return nil, apperr.NewValidation("price must not be negative")
	}

	var created *types.Product
	err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := ps.productRepo.NameExists(ctx, tx, name, uuid.Nil)
		if err != nil {
			return fmt.Errorf("check product name: %w", err)
		}
		if exists {
			return apperr.NewConflict("product with name %q already exists", name)
		}
		if err := ps.resolveRefs(ctx, tx, input.ProductTypeID, input.ClassificationID, input.StatusID); err != nil {
			return err
		}

		now := time.Now()
		created = &types.Product{
			ID:               uuid.New(),
			Name:             name,
			Description:      input.Description,
			Price:            input.Price,
			ProductTypeID:    input.ProductTypeID,
			ClassificationID: input.ClassificationID,
			StatusID:         input.StatusID,
			Metadata:         input.Metadata,
			Active:           input.Active,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := ps.productRepo.Create(ctx, tx, created); err != nil {
			return fmt.Errorf("create product: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	ps.log.Info("Created product", "product_id", created.ID, "name", name)
	return created, nil
}

func (ps *productService) Replace(ctx context.Context, productID uuid.UUID, input ProductInput) (*types.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperr.NewValidation("name is required")
	}
	if input.Price < 0 {
		return nil, apperr.NewValidation("price must not be negative")
	}

	var updated *types.Product
	err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product, err := ps.productRepo.GetByID(ctx, tx, productID)
		if err != nil {
			return fmt.Errorf("load product: %w", err)
		}
		if product == nil {
			return apperr.NewNotFound("product not found")
		}

		exists, err := ps.productRepo.NameExists(ctx, tx, name, productID)
		if err != nil {
			return fmt.Errorf("check product name: %w", err)
		}
		if exists {
			return apperr.NewConflict("product with name %q already exists", name)
		}
		if err := ps.resolveRefs(ctx, tx, input.ProductTypeID, input.ClassificationID, input.StatusID); err != nil {
			return err
		}

		product.Name = name
		product.Description = input.Description
		product.Price = input.Price
		product.ProductTypeID = input.ProductTypeID
		product.ClassificationID = input.ClassificationID
		product.StatusID = input.StatusID
		product.Metadata = input.Metadata
		product.Active = input.Active
		product.UpdatedAt = time.Now()

		if err := ps.productRepo.Save(ctx, tx, product); err != nil {
			return fmt.Errorf("save product: %w", err)
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (ps *productService) Patch(ctx context.Context, productID uuid.UUID, patch ProductPatch) (*types.Product, error) {
	var updated *types.Product
	err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product, err := ps.productRepo.GetByID(ctx, tx, productID)
		if err != nil {
			return fmt.Errorf("load product: %w", err)
		}
		if product == nil {
			return apperr.NewNotFound("product not found")
		}

		if patch.Name != nil {
			name := strings.TrimSpace(*patch.Name)
			if name == "" {
				return apperr.NewValidation("name is required")
			}
			exists, err := ps.productRepo.NameExists(ctx, tx, name, productID)
			if err != nil {
				return fmt.Errorf("check product name: %w", err)
			}
			if exists {
				return apperr.NewConflict("product with name %q already exists", name)
			}
			product.Name = name
		}
		if patch.Description != nil {
			product.Description = *patch.Description
		}
		if patch.Price != nil {
			if *patch.Price < 0 {
				return apperr.NewValidation("price must not be negative")
			}
			product.Price = *patch.Price
		}
		if patch.ProductTypeID != nil {
			if err := ps.resolveProductType(ctx, tx, *patch.ProductTypeID); err != nil {
				return err
			}
			product.ProductTypeID = *patch.ProductTypeID
		}
		if patch.ClassificationID != nil {
			if err := ps.resolveClassification(ctx, tx, *patch.ClassificationID); err != nil {
				return err
			}
			product.ClassificationID = *patch.ClassificationID
		}
		if patch.StatusID != nil {
			if err := ps.resolveStatus(ctx, tx, *patch.StatusID); err != nil {
				return err
			}
			product.StatusID = *patch.StatusID
		}
		if patch.Metadata != nil {
			product.Metadata = patch.Metadata
		}
		if patch.Active != nil {
			product.Active = *patch.Active
		}
		product.UpdatedAt = time.Now()

		if err := ps.productRepo.Save(ctx, tx, product); err != nil {
			return fmt.Errorf("save product: %w", err)
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (ps *productService) Delete(ctx context.Context, productID uuid.UUID) error {
	return ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product, err := ps.productRepo.GetByID(ctx, tx, productID)
		if err != nil {
			return fmt.Errorf("load product: %w", err)
		}
		if product == nil {
			return apperr.NewNotFound("product not found")
		}
		if ps.guard != nil {
			if err := ps.guard.Check(ctx, tx, productID); err != nil {
				return err
			}
		}
		if err := ps.productRepo.Delete(ctx, tx, productID); err != nil {
			return fmt.Errorf("delete product: %w", err)
		}
		ps.log.Info("Deleted product", "product_id", productID)
		return nil
	})
}

func (ps *productService) GetByID(ctx context.Context, productID uuid.UUID) (*types.Product, error) {
	product, err := ps.productRepo.GetByID(ctx, nil, productID)
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	if product == nil {
		return nil, apperr.NewNotFound("product not found")
	}
	return product, nil
}

func (ps *productService) List(ctx context.Context) ([]*types.Product, error) {
	results, err := ps.productRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return results, nil
}

func (ps *productService) resolveRefs(ctx context.Context, tx *gorm.DB, typeID, classificationID, statusID uuid.UUID) error {
	if err := ps.resolveProductType(ctx, tx, typeID); err != nil {
		return err
	}
	if err := ps.resolveClassification(ctx, tx, classificationID); err != nil {
		return err
	}
	return ps.resolveStatus(ctx, tx, statusID)
}

func (ps *productService) resolveProductType(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	rec, err := ps.productTypeRepo.GetByID(ctx, tx, id)
	if err != nil {
		return fmt.Errorf("resolve product type: %w", err)
	}
	if rec == nil {
		return apperr.NewNotFound("product type not found")
	}
	return nil
}

func (ps *productService) resolveClassification(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	rec, err := ps.classificationRepo.GetByID(ctx, tx, id)
	if err != nil {
		return fmt.Errorf("resolve classification: %w", err)
	}
	if rec == nil {
		return apperr.NewNotFound("classification not found")
	}
	return nil
}

func (ps *productService) resolveStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	rec, err := ps.statusRepo.GetByID(ctx, tx, id)
	if err != nil {
		return fmt.Errorf("resolve status: %w", err)
	}
	if rec == nil {
		return apperr.NewNotFound("status not found")
	}
	return nil
}
