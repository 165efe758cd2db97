package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mvaldebenito/gamestore-backend/internal/apperr"
	"github.com/mvaldebenito/gamestore-backend/internal/logger"
	"github.com/mvaldebenito/gamestore-backend/internal/repos"
	"github.com/mvaldebenito/gamestore-backend/internal/types"
)

type SaleItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice float64
}

// SaleItemPatch carries only the fields the caller supplied. Subtotal is not
// a field here and never will be: it is derived.
type SaleItemPatch struct {
	ProductID *uuid.UUID
	Quantity  *int
	UnitPrice *float64
}

// SaleItemService validates line items and keeps subtotal equal to
// quantity * unit price. Patch and Delete also recompute the owning sale's
// total in the same transaction so the aggregate invariant survives them.
type SaleItemService interface {
	Build(ctx context.Context, tx *gorm.DB, input SaleItemInput) (*types.SaleItem, error)
	GetByID(ctx context.Context, itemID uuid.UUID) (*types.SaleItem, error)
	Patch(ctx context.Context, itemID uuid.UUID, patch SaleItemPatch) (*types.SaleItem, error)
	Delete(ctx context.Context, itemID uuid.UUID) error
}

type saleItemService struct {
	db           *gorm.DB
	log          *logger.Logger
	saleRepo     repos.SaleRepo
	saleItemRepo repos.SaleItemRepo
	productRepo  repos.ProductRepo
}

func NewSaleItemService(
	db *gorm.DB,
	baseLog *logger.Logger,
	saleRepo repos.SaleRepo,
	saleItemRepo repos.SaleItemRepo,
	productRepo repos.ProductRepo,
) SaleItemService {
	serviceLog := baseLog.With("service", "SaleItemService")
	return &saleItemService{
		db:           db,
		log:          serviceLog,
		saleRepo:     saleRepo,
		saleItemRepo: saleItemRepo,
		productRepo:  productRepo,
	}
}

// Build validates the input and returns an unpersisted item with its subtotal
// computed. The sale service persists it as part of the aggregate.
func (sis *saleItemService) Build(ctx context.Context, tx *gorm.DB, input SaleItemInput) (*types.SaleItem, error) {
	product, err := sis.productRepo.GetByID(ctx, tx, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("resolve product: %w", err)
	}
	if product == nil {
		return nil, apperr.NewNotFound("product not found")
	}
	if input.Quantity < 1 {
		return nil, apperr.NewValidation("minimum quantity is 1")
	}
	if input.UnitPrice < 0 {
		return nil, apperr.NewValidation("unit price must not be negative")
	}

	now := time.Now()
	return &types.SaleItem{
		ID:        uuid.New(),
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		UnitPrice: input.UnitPrice,
		Subtotal:  float64(input.Quantity) * input.UnitPrice,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (sis *saleItemService) GetByID(ctx context.Context, itemID uuid.UUID) (*types.SaleItem, error) {
	item, err := sis.saleItemRepo.GetByID(ctx, nil, itemID)
	if err != nil {
		return nil, fmt.Errorf("load sale item: %w", err)
	}
	if item == nil {
		return nil, apperr.NewNotFound("sale item not found")
	}
	return item, nil
}

func (sis *saleItemService) Patch(ctx context.Context, itemID uuid.UUID, patch SaleItemPatch) (*types.SaleItem, error) {
	var updated *types.SaleItem
	err := sis.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := sis.saleItemRepo.GetByID(ctx, tx, itemID)
		if err != nil {
			return fmt.Errorf("load sale item: %w", err)
		}
		if item == nil {
			return apperr.NewNotFound("sale item not found")
		}

		if patch.ProductID != nil {
			product, err := sis.productRepo.GetByID(ctx, tx, *patch.ProductID)
			if err != nil {
				return fmt.Errorf("resolve product: %w", err)
			}
			if product == nil {
				return apperr.NewNotFound("product not found")
			}
			item.ProductID = *patch.ProductID
		}
		if patch.Quantity != nil {
			if *patch.Quantity < 1 {
				return apperr.NewValidation("minimum quantity is 1")
			}
			item.Quantity = *patch.Quantity
		}
		if patch.UnitPrice != nil {
			if *patch.UnitPrice < 0 {
				return apperr.NewValidation("unit price must not be negative")
			}
			item.UnitPrice = *patch.UnitPrice
		}

		// Any accepted change to a contributing field recomputes the subtotal.
		item.Subtotal = float64(item.Quantity) * item.UnitPrice
		item.UpdatedAt = time.Now()

		if err := sis.saleItemRepo.Save(ctx, tx, item); err != nil {
			return fmt.Errorf("save sale item: %w", err)
		}
		if err := sis.recalcSaleTotal(ctx, tx, item.SaleID); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (sis *saleItemService) Delete(ctx context.Context, itemID uuid.UUID) error {
	return sis.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := sis.saleItemRepo.GetByID(ctx, tx, itemID)
		if err != nil {
			return fmt.Errorf("load sale item: %w", err)
		}
		if item == nil {
			return apperr.NewNotFound("sale item not found")
		}
		if err := sis.saleItemRepo.Delete(ctx, tx, itemID); err != nil {
			return fmt.Errorf("delete sale item: %w", err)
		}
		return sis.recalcSaleTotal(ctx, tx, item.SaleID)
	})
}

func (sis *saleItemService) recalcSaleTotal(ctx context.Context, tx *gorm.DB, saleID uuid.UUID) error {
	total, err := sis.saleItemRepo.SumSubtotalsBySale(ctx, tx, saleID)
	if err != nil {
		return fmt.Errorf("sum sale items: %w", err)
	}
	sale, err := sis.saleRepo.GetByID(ctx, tx, saleID)
	if err != nil {
		return fmt.Errorf("load sale: %w", err)
	}
	if sale == nil {
		return apperr.NewNotFound("sale not found")
	}
	sale.Total = total
	sale.UpdatedAt = time.Now()
	if err := sis.saleRepo.Save(ctx, tx, sale); err != nil {
		return fmt.Errorf("save sale: %w", err)
	}
	return nil
}
