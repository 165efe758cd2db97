package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mvaldebenito/gamestore-backend/internal/logger"
	"github.com/mvaldebenito/gamestore-backend/internal/types"
)

type AddressRepo interface {
	Create(ctx context.Context, tx *gorm.DB, address *types.Address) error
	GetByID(ctx context.Context, tx *gorm.DB, addressID uuid.UUID) (*types.Address, error)
	Save(ctx context.Context, tx *gorm.DB, address *types.Address) error
	Delete(ctx context.Context, tx *gorm.DB, addressID uuid.UUID) error
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Address, error)
	CountByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
	CountByComuna(ctx context.Context, tx *gorm.DB, comunaID uuid.UUID) (int64, error)
}

type addressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAddressRepo(db *gorm.DB, baseLog *logger.Logger) AddressRepo {
	repoLog := baseLog.With("repo", "AddressRepo")
	return &addressRepo{db: db, log: repoLog}
}

func (ar *addressRepo) Create(ctx context.Context, tx *gorm.DB, address *types.Address) error {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	return transaction.WithContext(ctx).Create(address).Error
}

func (ar *addressRepo) GetByID(ctx context.Context, tx *gorm.DB, addressID uuid.UUID) (*types.Address, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var address types.Address
	err := transaction.WithContext(ctx).
		Where("id = ?", addressID).
		First(&address).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func (ar *addressRepo) Save(ctx context.Context, tx *gorm.DB, address *types.Address) error {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	return transaction.WithContext(ctx).Save(address).Error
}

func (ar *addressRepo) Delete(ctx context.Context, tx *gorm.DB, addressID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	return transaction.WithContext(ctx).Where("id = ?", addressID).Delete(&types.Address{}).Error
}

func (ar *addressRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Address, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []*types.Address
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ar *addressRepo) CountByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	return ar.countBy(ctx, tx, "user_id", userID)
}

func (ar *addressRepo) CountByComuna(ctx context.Context, tx *gorm.DB, comunaID uuid.UUID) (int64, error) {
	return ar.countBy(ctx, tx, "comuna_id", comunaID)
}

func (ar *addressRepo) countBy(ctx context.Context, tx *gorm.DB, column string, id uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Address{}).
		Where(column+" = ?", id).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
