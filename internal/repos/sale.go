package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mvaldebenito/gamestore-backend/internal/logger"
	"github.com/mvaldebenito/gamestore-backend/internal/types"
)

type SaleRepo interface {
	Create(ctx context.Context, tx *gorm.DB, sale *types.Sale) error
	GetByID(ctx context.Context, tx *gorm.DB, saleID uuid.UUID) (*types.Sale, error)
	GetByIDWithItems(ctx context.Context, tx *gorm.DB, saleID uuid.UUID) (*types.Sale, error)
	Save(ctx context.Context, tx *gorm.DB, sale *types.Sale) error
	Delete(ctx context.Context, tx *gorm.DB, saleID uuid.UUID) error
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Sale, error)
	CountByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
	CountByColumn(ctx context.Context, tx *gorm.DB, column string, id uuid.UUID) (int64, error)
}

type saleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSaleRepo(db *gorm.DB, baseLog *logger.Logger) SaleRepo {
	repoLog := baseLog.With("repo", "SaleRepo")
	return &saleRepo{db: db, log: repoLog}
}

func (sr *saleRepo) Create(ctx context.Context, tx *gorm.DB, sale *types.Sale) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).Create(sale).Error
}

func (sr *saleRepo) GetByID(ctx context.Context, tx *gorm.DB, saleID uuid.UUID) (*types.Sale, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var sale types.Sale
	err := transaction.WithContext(ctx).
		Where("id = ?", saleID).
		First(&sale).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (sr *saleRepo) GetByIDWithItems(ctx context.Context, tx *gorm.DB, saleID uuid.UUID) (*types.Sale, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var sale types.Sale
	err := transaction.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ?", saleID).
		First(&sale).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (sr *saleRepo) Save(ctx context.Context, tx *gorm.DB, sale *types.Sale) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).Omit("Items").Save(sale).Error
}

func (sr *saleRepo) Delete(ctx context.Context, tx *gorm.DB, saleID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).Where("id = ?", saleID).Delete(&types.Sale{}).Error
}

func (sr *saleRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Sale, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []*types.Sale
	if err := transaction.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *saleRepo) CountByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	return sr.CountByColumn(ctx, tx, "user_id", userID)
}

// CountByColumn backs the delete guard checks for payment method, shipping
// method and status references.
func (sr *saleRepo) CountByColumn(ctx context.Context, tx *gorm.DB, column string, id uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Sale{}).
		Where(column+" = ?", id).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
