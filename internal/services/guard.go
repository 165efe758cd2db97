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

// DependentCheck counts records of one dependent kind that still reference the
// entity about to be deleted.
type DependentCheck struct {
	Label string
	Count func(ctx context.Context, tx *gorm.DB, id uuid.UUID) (int64, error)
}

// DeleteGuard rejects deletion of an entity that is still referenced.
// Checks run in order at delete time, inside the caller's transaction, so the
// result reflects current state rather than anything cached. The database
// foreign keys remain the backstop for races the check cannot see.
type DeleteGuard struct {
	log    *logger.Logger
	kind   string
	checks []DependentCheck
}

func NewDeleteGuard(baseLog *logger.Logger, kind string, checks ...DependentCheck) *DeleteGuard {
	guardLog := baseLog.With("guard", "DeleteGuard", "kind", kind)
	return &DeleteGuard{log: guardLog, kind: kind, checks: checks}
}

func (dg *DeleteGuard) Check(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	for _, check := range dg.checks {
		count, err := check.Count(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("count %s dependents: %w", check.Label, err)
		}
		if count > 0 {
			dg.log.Debug("Delete blocked by dependents", "id", id, "dependent", check.Label, "count", count)
			return apperr.NewConflict("cannot delete %s: still referenced by %d %s", dg.kind, count, check.Label)
		}
	}
	return nil
}

// ResolveRef reports whether a referenced id exists, as a typed domain error.
type ResolveRef func(ctx context.Context, tx *gorm.DB, id uuid.UUID) error

// CatalogResolver adapts a catalog repo into a ResolveRef for link and
// aggregate validation.
func CatalogResolver[T any](repo repos.CatalogRepo[T], kind string) ResolveRef {
	return func(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
		rec, err := repo.GetByID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", kind, err)
		}
		if rec == nil {
			return apperr.NewNotFound("%s not found", kind)
		}
		return nil
	}
}

func ProductResolver(repo repos.ProductRepo) ResolveRef {
	return func(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
		product, err := repo.GetByID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("resolve product: %w", err)
		}
		if product == nil {
			return apperr.NewNotFound("product not found")
		}
		return nil
	}
}
