package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/mvaldebenito/gamestore-backend/internal/apperr"
	"github.com/mvaldebenito/gamestore-backend/internal/logger"
	"github.com/mvaldebenito/gamestore-backend/internal/repos"
	"github.com/mvaldebenito/gamestore-backend/internal/types"
)

const (
	purchaseDateLayout = "2006-01-02"
	purchaseTimeLayout = "15:04:05"
)

type CreateSaleInput struct {
	UserID           uuid.UUID
	PaymentMethodID  uuid.UUID
	ShippingMethodID uuid.UUID
	StatusID         uuid.UUID
	PurchaseDate     *string
	PurchaseTime     *string
	Items            []SaleItemInput
}

type ReplaceSaleInput struct {
	PaymentMethodID  uuid.UUID
	ShippingMethodID uuid.UUID
	StatusID         uuid.UUID
	PurchaseDate     string
	PurchaseTime     string
}

type PatchSaleInput struct {
	PaymentMethodID  *uuid.UUID
	ShippingMethodID *uuid.UUID
	StatusID         *uuid.UUID
	PurchaseDate     *string
	PurchaseTime     *string
}

// SaleService assembles and mutates the sale aggregate. Creation resolves the
// user, payment method, shipping method and status strictly in that order,
// since callers depend on which error fires first for a multiply-invalid
// request. Every line goes through the sale item engine and the whole
// aggregate persists in one transaction. Total is always the sum of item
// subtotals.
//
// Replace and Patch never touch line items; those are fixed at creation and
// only mutable through SaleItemService. Status is a free reference field with
// no transition rules.
type SaleService interface {
	Create(ctx context.Context, input CreateSaleInput) (*types.Sale, error)
	Replace(ctx context.Context, saleID uuid.UUID, input ReplaceSaleInput) (*types.Sale, error)
	Patch(ctx context.Context, saleID uuid.UUID, input PatchSaleInput) (*types.Sale, error)
	Delete(ctx context.Context, saleID uuid.UUID) error
	GetByID(ctx context.Context, saleID uuid.UUID) (*types.Sale, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*types.Sale, error)
}

type saleService struct {
	db                 *gorm.DB
	log                *logger.Logger
	saleRepo           repos.SaleRepo
	saleItemRepo       repos.SaleItemRepo
	userRepo           repos.UserRepo
	paymentMethodRepo  repos.CatalogRepo[types.PaymentMethod]
	shippingMethodRepo repos.CatalogRepo[types.ShippingMethod]
	statusRepo         repos.CatalogRepo[types.Status]
	saleItemService    SaleItemService
}

func NewSaleService(
	db *gorm.DB,
	baseLog *logger.Logger,
	saleRepo repos.SaleRepo,
	saleItemRepo repos.SaleItemRepo,
	userRepo repos.UserRepo,
	paymentMethodRepo repos.CatalogRepo[types.PaymentMethod],
	shippingMethodRepo repos.CatalogRepo[types.ShippingMethod],
	statusRepo repos.CatalogRepo[types.Status],
	saleItemService SaleItemService,
) SaleService {
	serviceLog := baseLog.With("service", "SaleService")
	return &saleService{
		db:                 db,
		log:                serviceLog,
		saleRepo:           saleRepo,
		saleItemRepo:       saleItemRepo,
		userRepo:           userRepo,
		paymentMethodRepo:  paymentMethodRepo,
		shippingMethodRepo: shippingMethodRepo,
		statusRepo:         statusRepo,
		saleItemService:    saleItemService,
	}
}

func (ss *saleService) Create(ctx context.Context, input CreateSaleInput) (*types.Sale, error) {
	var sale *types.Sale
	err := ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Resolution order is part of the contract: user, payment, shipping, status.
		user, err := ss.userRepo.GetByID(ctx, tx, input.UserID)
		if err != nil {
			return fmt.Errorf("resolve user: %w", err)
		}
		if user == nil {
			return apperr.NewNotFound("user not found")
		}
		if err := ss.resolvePaymentMethod(ctx, tx, input.PaymentMethodID); err != nil {
			return err
		}
		if err := ss.resolveShippingMethod(ctx, tx, input.ShippingMethodID); err != nil {
			return err
		}
		if err := ss.resolveStatus(ctx, tx, input.StatusID); err != nil {
			return err
		}

		// Any invalid line aborts the whole creation; nothing is persisted.
		items := make([]*types.SaleItem, 0, len(input.Items))
		total := 0.0
		for _, itemInput := range input.Items {
			item, err := ss.saleItemService.Build(ctx, tx, itemInput)
			if err != nil {
				return err
			}
			total += item.Subtotal
			items = append(items, item)
		}

		purchaseDate, purchaseTime, err := resolvePurchaseMoment(input.PurchaseDate, input.PurchaseTime)
		if err != nil {
			return err
		}

		now := time.Now()
		sale = &types.Sale{
			ID:               uuid.New(),
			UserID:           input.UserID,
			PaymentMethodID:  input.PaymentMethodID,
			ShippingMethodID: input.ShippingMethodID,
			StatusID:         input.StatusID,
			PurchaseDate:     purchaseDate,
			PurchaseTime:     purchaseTime,
			Total:            total,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := ss.saleRepo.Create(ctx, tx, sale); err != nil {
			return fmt.Errorf("create sale: %w", err)
		}

		for _, item := range items {
			item.SaleID = sale.ID
		}
		if err := ss.saleItemRepo.CreateBatch(ctx, tx, items); err != nil {
			return fmt.Errorf("create sale items: %w", err)
		}

		sale.Items = make([]types.SaleItem, len(items))
		for i, item := range items {
			sale.Items[i] = *item
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	ss.log.Info("Created sale", "sale_id", sale.ID, "user_id", sale.UserID, "items", len(sale.Items), "total", sale.Total)
	return sale, nil
}

// Replace is Patch with every field considered present. The required-field
// checks run before any resolution so a missing reference surfaces as a
// validation failure, not a lookup failure.
func (ss *saleService) Replace(ctx context.Context, saleID uuid.UUID, input ReplaceSaleInput) (*types.Sale, error) {
	if input.PaymentMethodID == uuid.Nil {
		return nil, apperr.NewValidation("payment method is required")
	}
	if input.ShippingMethodID == uuid.Nil {
		return nil, apperr.NewValidation("shipping method is required")
	}
	if input.StatusID == uuid.Nil {
		return nil, apperr.NewValidation("status is required")
	}
	if input.PurchaseDate == "" {
		return nil, apperr.NewValidation("purchase date is required")
	}
	if input.PurchaseTime == "" {
		return nil, apperr.NewValidation("purchase time is required")
	}
	return ss.Patch(ctx, saleID, PatchSaleInput{
		PaymentMethodID:  &input.PaymentMethodID,
		ShippingMethodID: &input.ShippingMethodID,
		StatusID:         &input.StatusID,
		PurchaseDate:     &input.PurchaseDate,
		PurchaseTime:     &input.PurchaseTime,
	})
}

func (ss *saleService) Patch(ctx context.Context, saleID uuid.UUID, input PatchSaleInput) (*types.Sale, error) {
	var updated *types.Sale
	err := ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sale, err := ss.saleRepo.GetByIDWithItems(ctx, tx, saleID)
		if err != nil {
			return fmt.Errorf("load sale: %w", err)
		}
		if sale == nil {
			return apperr.NewNotFound("sale not found")
		}

		if input.PurchaseDate != nil {
			parsed, err := time.Parse(purchaseDateLayout, *input.PurchaseDate)
			if err != nil {
				return apperr.NewValidation("invalid purchase date, expected %s", purchaseDateLayout)
			}
			sale.PurchaseDate = datatypes.Date(parsed)
		}
		if input.PurchaseTime != nil {
			parsed, err := time.Parse(purchaseTimeLayout, *input.PurchaseTime)
			if err != nil {
				return apperr.NewValidation("invalid purchase time, expected %s", purchaseTimeLayout)
			}
			sale.PurchaseTime = datatypes.NewTime(parsed.Hour(), parsed.Minute(), parsed.Second(), 0)
		}
		if input.PaymentMethodID != nil {
			if err := ss.resolvePaymentMethod(ctx, tx, *input.PaymentMethodID); err != nil {
				return err
			}
			sale.PaymentMethodID = *input.PaymentMethodID
		}
		if input.ShippingMethodID != nil {
			if err := ss.resolveShippingMethod(ctx, tx, *input.ShippingMethodID); err != nil {
				return err
			}
			sale.ShippingMethodID = *input.ShippingMethodID
		}
		if input.StatusID != nil {
			if err := ss.resolveStatus(ctx, tx, *input.StatusID); err != nil {
				return err
			}
			sale.StatusID = *input.StatusID
		}
		sale.UpdatedAt = time.Now()

		if err := ss.saleRepo.Save(ctx, tx, sale); err != nil {
			return fmt.Errorf("save sale: %w", err)
		}
		updated = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete cascades to the owned items. Sales are leaves in the reference
// graph, so no delete guard applies.
func (ss *saleService) Delete(ctx context.Context, saleID uuid.UUID) error {
	return ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sale, err := ss.saleRepo.GetByID(ctx, tx, saleID)
		if err != nil {
			return fmt.Errorf("load sale: %w", err)
		}
		if sale == nil {
			return apperr.NewNotFound("sale not found")
		}
		if err := ss.saleItemRepo.DeleteBySale(ctx, tx, saleID); err != nil {
			return fmt.Errorf("delete sale items: %w", err)
		}
		if err := ss.saleRepo.Delete(ctx, tx, saleID); err != nil {
			return fmt.Errorf("delete sale: %w", err)
		}
		ss.log.Info("Deleted sale", "sale_id", saleID)
		return nil
	})
}

func (ss *saleService) GetByID(ctx context.Context, saleID uuid.UUID) (*types.Sale, error) {
	sale, err := ss.saleRepo.GetByIDWithItems(ctx, nil, saleID)
	if err != nil {
		return nil, fmt.Errorf("load sale: %w", err)
	}
	if sale == nil {
		return nil, apperr.NewNotFound("sale not found")
	}
	return sale, nil
}

func (ss *saleService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*types.Sale, error) {
	user, err := ss.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}
	if user == nil {
		return nil, apperr.NewNotFound("user not found")
	}
	results, err := ss.saleRepo.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return results, nil
}

func (ss *saleService) resolvePaymentMethod(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	rec, err := ss.paymentMethodRepo.GetByID(ctx, tx, id)
	if err != nil {
		return fmt.Errorf("resolve payment method: %w", err)
	}
	if rec == nil {
		return apperr.NewNotFound("payment method not found")
	}
	return nil
}

func (ss *saleService) resolveShippingMethod(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	rec, err := ss.shippingMethodRepo.GetByID(ctx, tx, id)
	if err != nil {
		return fmt.Errorf("resolve shipping method: %w", err)
	}
	if rec == nil {
		return apperr.NewNotFound("shipping method not found")
	}
	return nil
}

func (ss *saleService) resolveStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	rec, err := ss.statusRepo.GetByID(ctx, tx, id)
	if err != nil {
		return fmt.Errorf("resolve status: %w", err)
	}
	if rec == nil {
		return apperr.NewNotFound("status not found")
	}
	return nil
}

// resolvePurchaseMoment parses the caller-supplied date and time or defaults
// both to now.
func resolvePurchaseMoment(dateStr, timeStr *string) (datatypes.Date, datatypes.Time, error) {
	now := time.Now()
	purchaseDate := datatypes.Date(now)
	purchaseTime := datatypes.NewTime(now.Hour(), now.Minute(), now.Second(), 0)

	if dateStr != nil {
		parsed, err := time.Parse(purchaseDateLayout, *dateStr)
		if err != nil {
			return purchaseDate, purchaseTime, apperr.NewValidation("invalid purchase date, expected %s", purchaseDateLayout)
		}
		purchaseDate = datatypes.Date(parsed)
	}
	if timeStr != nil {
		parsed, err := time.Parse(purchaseTimeLayout, *timeStr)
		if err != nil {
			return purchaseDate, purchaseTime, apperr.NewValidation("invalid purchase time, expected %s", purchaseTimeLayout)
		}
		purchaseTime = datatypes.NewTime(parsed.Hour(), parsed.Minute(), parsed.Second(), 0)
	}
	return purchaseDate, purchaseTime, nil
}
