package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mvaldebenito/gamestore-backend/internal/logger"
)

// CatalogRepo is the storage shape shared by every lookup entity. One generic
// implementation serves all kinds; GORM derives the table from T.
//
// GetByID returns (nil, nil) when the id is unknown; the service layer owns
// the not-found error.
type CatalogRepo[T any] interface {
	Create(ctx context.Context, tx *gorm.DB, rec *T) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*T, error)
	NameExists(ctx context.Context, tx *gorm.DB, name string, excludeID uuid.UUID) (bool, error)
	Save(ctx context.Context, tx *gorm.DB, rec *T) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	List(ctx context.Context, tx *gorm.DB) ([]*T, error)
}

type catalogRepo[T any] struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCatalogRepo[T any](db *gorm.DB, baseLog *logger.Logger, kind string) CatalogRepo[T] {
	repoLog := baseLog.With("repo", "CatalogRepo", "kind", kind)
	return &catalogRepo[T]{db: db, log: repoLog}
}

func (cr *catalogRepo[T]) Create(ctx context.Context, tx *gorm.DB, rec *T) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).Create(rec).Error
}

func (cr *catalogRepo[T]) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*T, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var rec T
	err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (cr *catalogRepo[T]) NameExists(ctx context.Context, tx *gorm.DB, name string, excludeID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	query := transaction.WithContext(ctx).
		Model(new(T)).
		Where("LOWER(name) = LOWER(?)", name)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (cr *catalogRepo[T]) Save(ctx context.Context, tx *gorm.DB, rec *T) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).Save(rec).Error
}

func (cr *catalogRepo[T]) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).Where("id = ?", id).Delete(new(T)).Error
}

func (cr *catalogRepo[T]) List(ctx context.Context, tx *gorm.DB) ([]*T, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*T
	if err := transaction.WithContext(ctx).
		Model(new(T)).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
