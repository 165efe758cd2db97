package repos

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mvaldebenito/gamestore-backend/internal/logger"
)

// LinkRepo stores one bridge-relation kind (product↔genre, company↔type, ...).
// The generic implementation is parameterized with the two foreign-key column
// names and a record factory, so every pair type keeps its own table and
// unique pair index.
type LinkRepo[T any] interface {
	Create(ctx context.Context, tx *gorm.DB, leftID, rightID uuid.UUID) (*T, error)
	GetByPair(ctx context.Context, tx *gorm.DB, leftID, rightID uuid.UUID) (*T, error)
	DeleteByPair(ctx context.Context, tx *gorm.DB, leftID, rightID uuid.UUID) error
	ListByLeft(ctx context.Context, tx *gorm.DB, leftID uuid.UUID) ([]*T, error)
	ListByRight(ctx context.Context, tx *gorm.DB, rightID uuid.UUID) ([]*T, error)
	CountByLeft(ctx context.Context, tx *gorm.DB, leftID uuid.UUID) (int64, error)
	CountByRight(ctx context.Context, tx *gorm.DB, rightID uuid.UUID) (int64, error)
}

type linkRepo[T any] struct {
	db        *gorm.DB
	log       *logger.Logger
	leftCol   string
	rightCol  string
	newRecord func(leftID, rightID uuid.UUID) *T
}

func NewLinkRepo[T any](
	db *gorm.DB,
	baseLog *logger.Logger,
	kind string,
	leftCol string,
	rightCol string,
	newRecord func(leftID, rightID uuid.UUID) *T,
) LinkRepo[T] {
	repoLog := baseLog.With("repo", "LinkRepo", "kind", kind)
	return &linkRepo[T]{
		db:        db,
		log:       repoLog,
		leftCol:   leftCol,
		rightCol:  rightCol,
		newRecord: newRecord,
	}
}

func (lr *linkRepo[T]) Create(ctx context.Context, tx *gorm.DB, leftID, rightID uuid.UUID) (*T, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	rec := lr.newRecord(leftID, rightID)
	if err := transaction.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

func (lr *linkRepo[T]) GetByPair(ctx context.Context, tx *gorm.DB, leftID, rightID uuid.UUID) (*T, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var rec T
	err := transaction.WithContext(ctx).
		Where(fmt.Sprintf("%s = ? AND %s = ?", lr.leftCol, lr.rightCol), leftID, rightID).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (lr *linkRepo[T]) DeleteByPair(ctx context.Context, tx *gorm.DB, leftID, rightID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	return transaction.WithContext(ctx).
		Where(fmt.Sprintf("%s = ? AND %s = ?", lr.leftCol, lr.rightCol), leftID, rightID).
		Delete(new(T)).Error
}

func (lr *linkRepo[T]) ListByLeft(ctx context.Context, tx *gorm.DB, leftID uuid.UUID) ([]*T, error) {
	return lr.listBy(ctx, tx, lr.leftCol, leftID)
}

func (lr *linkRepo[T]) ListByRight(ctx context.Context, tx *gorm.DB, rightID uuid.UUID) ([]*T, error) {
	return lr.listBy(ctx, tx, lr.rightCol, rightID)
}

func (lr *linkRepo[T]) listBy(ctx context.Context, tx *gorm.DB, column string, id uuid.UUID) ([]*T, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var results []*T
	if err := transaction.WithContext(ctx).
		Model(new(T)).
		Where(fmt.Sprintf("%s = ?", column), id).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (lr *linkRepo[T]) CountByLeft(ctx context.Context, tx *gorm.DB, leftID uuid.UUID) (int64, error) {
	return lr.countBy(ctx, tx, lr.leftCol, leftID)
}

func (lr *linkRepo[T]) CountByRight(ctx context.Context, tx *gorm.DB, rightID uuid.UUID) (int64, error) {
	return lr.countBy(ctx, tx, lr.rightCol, rightID)
}

func (lr *linkRepo[T]) countBy(ctx context.Context, tx *gorm.DB, column string, id uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(new(T)).
		Where(fmt.Sprintf("%s = ?", column), id).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
