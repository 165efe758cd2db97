package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mvaldebenito/gamestore-backend/internal/logger"
	"github.com/mvaldebenito/gamestore-backend/internal/types"
)

type SaleItemRepo interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, items []*types.SaleItem) error
	GetByID(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) (*types.SaleItem, error)
	Save(ctx context.Context, tx *gorm.DB, item *types.SaleItem) error
	Delete(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) error
	DeleteBySale(ctx context.Context, tx *gorm.DB, saleID uuid.UUID) error
	ListBySale(ctx context.Context, tx *gorm.DB, saleID uuid.UUID) ([]*types.SaleItem, error)
	SumSubtotalsBySale(ctx context.Context, tx *gorm.DB, saleID uuid.UUID) (float64, error)
	CountByProduct(ctx context.Context, tx *gorm.DB, productID uuid.UUID) (int64, error)
}

type saleItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSaleItemRepo(db *gorm.DB, baseLog *logger.Logger) SaleItemRepo {
	repoLog := baseLog.With("repo", "SaleItemRepo")
	return &saleItemRepo{db: db, log: repoLog}
}

func (sir *saleItemRepo) CreateBatch(ctx context.Context, tx *gorm.DB, items []*types.SaleItem) error {
	transaction := tx
	if transaction == nil {
		transaction = sir.db
	}
	if len(items) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).Create(&items).Error
}

func (sir *saleItemRepo) GetByID(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) (*types.SaleItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = sir.db
	}

	var item types.SaleItem
	err := transaction.WithContext(ctx).
		Where("id = ?", itemID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (sir *saleItemRepo) Save(ctx context.Context, tx *gorm.DB, item *types.SaleItem) error {
	transaction := tx
	if transaction == nil {
		transaction = sir.db
	}
	return transaction.WithContext(ctx).Save(item).Error
}

func (sir *saleItemRepo) Delete(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = sir.db
	}
	return transaction.WithContext(ctx).Where("id = ?", itemID).Delete(&types.SaleItem{}).Error
}

func (sir *saleItemRepo) DeleteBySale(ctx context.Context, tx *gorm.DB, saleID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = sir.db
	}
	return transaction.WithContext(ctx).Where("sale_id = ?", saleID).Delete(&types.SaleItem{}).Error
}

func (sir *saleItemRepo) ListBySale(ctx context.Context, tx *gorm.DB, saleID uuid.UUID) ([]*types.SaleItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = sir.db
	}

	var results []*types.SaleItem
	if err := transaction.WithContext(ctx).
		Where("sale_id = ?", saleID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sir *saleItemRepo) SumSubtotalsBySale(ctx context.Context, tx *gorm.DB, saleID uuid.UUID) (float64, error) {
	transaction := tx
	if transaction == nil {
		transaction = sir.db
	}

	var total float64
	if err := transaction.WithContext(ctx).
		Model(&types.SaleItem{}).
		Where("sale_id = ?", saleID).
		Select("COALESCE(SUM(subtotal), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (sir *saleItemRepo) CountByProduct(ctx context.Context, tx *gorm.DB, productID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = sir.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.SaleItem{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
