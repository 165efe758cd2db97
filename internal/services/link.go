package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mvaldebenito/gamestore-backend/internal/apperr"
	"github.com/mvaldebenito/gamestore-backend/internal/logger"
	"github.com/mvaldebenito/gamestore-backend/internal/repos"
)

// LinkService manages one bridge-relation kind. Link resolves both sides
// before creating (left first, then right), and rejects a pair that already
// exists. Unlink is idempotent: removing an absent pair is a no-op success.
type LinkService[T any] interface {
	Link(ctx context.Context, leftID, rightID uuid.UUID) (*T, error)
	Unlink(ctx context.Context, leftID, rightID uuid.UUID) error
	ListByLeft(ctx context.Context, leftID uuid.UUID) ([]*T, error)
	ListByRight(ctx context.Context, rightID uuid.UUID) ([]*T, error)
}

type linkService[T any] struct {
	db           *gorm.DB
	log          *logger.Logger
	repo         repos.LinkRepo[T]
	kind         string
	resolveLeft  ResolveRef
	resolveRight ResolveRef
}

func NewLinkService[T any](
	db *gorm.DB,
	baseLog *logger.Logger,
	repo repos.LinkRepo[T],
	kind string,
	resolveLeft ResolveRef,
	resolveRight ResolveRef,
) LinkService[T] {
	serviceLog := baseLog.With("service", "LinkService", "kind", kind)
	return &linkService[T]{
		db:           db,
		log:          serviceLog,
		repo:         repo,
		kind:         kind,
		resolveLeft:  resolveLeft,
		resolveRight: resolveRight,
	}
}

func (ls *linkService[T]) Link(ctx context.Context, leftID, rightID uuid.UUID) (*T, error) {
	var created *T
	err := ls.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ls.resolveLeft(ctx, tx, leftID); err != nil {
			return err
		}
		if err := ls.resolveRight(ctx, tx, rightID); err != nil {
			return err
		}

		existing, err := ls.repo.GetByPair(ctx, tx, leftID, rightID)
		if err != nil {
			return fmt.Errorf("check %s pair: %w", ls.kind, err)
		}
		if existing != nil {
			return apperr.NewConflict("%s link already exists", ls.kind)
		}

		created, err = ls.repo.Create(ctx, tx, leftID, rightID)
		if err != nil {
			return fmt.Errorf("create %s link: %w", ls.kind, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	ls.log.Info("Linked pair", "left_id", leftID, "right_id", rightID)
	return created, nil
}

func (ls *linkService[T]) Unlink(ctx context.Context, leftID, rightID uuid.UUID) error {
	if err := ls.repo.DeleteByPair(ctx, nil, leftID, rightID); err != nil {
		return fmt.Errorf("delete %s link: %w", ls.kind, err)
	}
	return nil
}

func (ls *linkService[T]) ListByLeft(ctx context.Context, leftID uuid.UUID) ([]*T, error) {
	results, err := ls.repo.ListByLeft(ctx, nil, leftID)
	if err != nil {
		return nil, fmt.Errorf("list %s links: %w", ls.kind, err)
	}
	return results, nil
}

func (ls *linkService[T]) ListByRight(ctx context.Context, rightID uuid.UUID) ([]*T, error) {
	results, err := ls.repo.ListByRight(ctx, nil, rightID)
	if err != nil {
		return nil, fmt.Errorf("list %s links: %w", ls.kind, err)
	}
	return results, nil
}
