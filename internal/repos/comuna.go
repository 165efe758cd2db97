package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mvaldebenito/gamestore-backend/internal/logger"
	"github.com/mvaldebenito/gamestore-backend/internal/types"
)

type ComunaRepo interface {
	Create(ctx context.Context, tx *gorm.DB, comuna *types.Comuna) error
	GetByID(ctx context.Context, tx *gorm.DB, comunaID uuid.UUID) (*types.Comuna, error)
	NameExistsInRegion(ctx context.Context, tx *gorm.DB, regionID uuid.UUID, name string, excludeID uuid.UUID) (bool, error)
	Save(ctx context.Context, tx *gorm.DB, comuna *types.Comuna) error
	Delete(ctx context.Context, tx *gorm.DB, comunaID uuid.UUID) error
	ListByRegion(ctx context.Context, tx *gorm.DB, regionID uuid.UUID) ([]*types.Comuna, error)
	CountByRegion(ctx context.Context, tx *gorm.DB, regionID uuid.UUID) (int64, error)
}

type comunaRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewComunaRepo(db *gorm.DB, baseLog *logger.Logger) ComunaRepo {
	repoLog := baseLog.With("repo", "ComunaRepo")
	return &comunaRepo{db: db, log: repoLog}
}

func (cr *comunaRepo) Create(ctx context.Context, tx *gorm.DB, comuna *types.Comuna) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).Create(comuna).Error
}

func (cr *comunaRepo) GetByID(ctx context.Context, tx *gorm.DB, comunaID uuid.UUID) (*types.Comuna, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var comuna types.Comuna
	err := transaction.WithContext(ctx).
		Where("id = ?", comunaID).
		First(&comuna).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comuna, nil
}

func (cr *comunaRepo) NameExistsInRegion(ctx context.Context, tx *gorm.DB, regionID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	query := transaction.WithContext(ctx).
		Model(&types.Comuna{}).
		Where("region_id = ? AND LOWER(name) = LOWER(?)", regionID, name)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (cr *comunaRepo) Save(ctx context.Context, tx *gorm.DB, comuna *types.Comuna) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).Save(comuna).Error
}

func (cr *comunaRepo) Delete(ctx context.Context, tx *gorm.DB, comunaID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).Where("id = ?", comunaID).Delete(&types.Comuna{}).Error
}

func (cr *comunaRepo) ListByRegion(ctx context.Context, tx *gorm.DB, regionID uuid.UUID) ([]*types.Comuna, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Comuna
	if err := transaction.WithContext(ctx).
		Where("region_id = ?", regionID).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *comunaRepo) CountByRegion(ctx context.Context, tx *gorm.DB, regionID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Comuna{}).
		Where("region_id = ?", regionID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
