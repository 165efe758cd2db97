package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mvaldebenito/gamestore-backend/internal/apperr"
	"github.com/mvaldebenito/gamestore-backend/internal/logger"
	"github.com/mvaldebenito/gamestore-backend/internal/repos"
	"github.com/mvaldebenito/gamestore-backend/internal/types"
)

type CatalogInput struct {
	Name        string
	Active      bool
	Description string
}

type CatalogPatch struct {
	Name        *string
	Active      *bool
	Description *string
}

// CatalogService implements create/replace/patch/delete once for every lookup
// kind. Create and Replace validate the full input; Patch validates and
// applies only the fields present. Delete runs the kind's delete guard before
// touching the row.
type CatalogService[T any, PT interface {
	*T
	types.CatalogRecord
}] interface {
	Create(ctx context.Context, input CatalogInput) (*T, error)
	Replace(ctx context.Context, id uuid.UUID, input CatalogInput) (*T, error)
	Patch(ctx context.Context, id uuid.UUID, patch CatalogPatch) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	List(ctx context.Context) ([]*T, error)
}

type catalogService[T any, PT interface {
	*T
	types.CatalogRecord
}] struct {
	db    *gorm.DB
	log   *logger.Logger
	repo  repos.CatalogRepo[T]
	kind  string
	guard *DeleteGuard
}

func NewCatalogService[T any, PT interface {
	*T
	types.CatalogRecord
}](db *gorm.DB, baseLog *logger.Logger, repo repos.CatalogRepo[T], kind string, guard *DeleteGuard) CatalogService[T, PT] {
	serviceLog := baseLog.With("service", "CatalogService", "kind", kind)
	return &catalogService[T, PT]{db: db, log: serviceLog, repo: repo, kind: kind, guard: guard}
}

func (cs *catalogService[T, PT]) Create(ctx context.Context, input CatalogInput) (*T, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperr.NewValidation("name is required")
	}

	var created *T
	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := cs.repo.NameExists(ctx, tx, name, uuid.Nil)
		if err != nil {
			return fmt.Errorf("check %s name: %w", cs.kind, err)
		}
		if exists {
			return apperr.NewConflict("%s with name %q already exists", cs.kind, name)
		}

		var rec T
		data := PT(&rec).CatalogData()
		now := time.Now()
		data.ID = uuid.New()
		data.Name = name
		data.Active = input.Active
		data.Description = input.Description
		data.CreatedAt = now
		data.UpdatedAt = now

		if err := cs.repo.Create(ctx, tx, &rec); err != nil {
			return fmt.Errorf("create %s: %w", cs.kind, err)
		}
		created = &rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	cs.log.Info("Created catalog entity", "id", PT(created).CatalogData().ID, "name", name)
	return created, nil
}

func (cs *catalogService[T, PT]) Replace(ctx context.Context, id uuid.UUID, input CatalogInput) (*T, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperr.NewValidation("name is required")
	}

	var updated *T
	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := cs.repo.GetByID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("load %s: %w", cs.kind, err)
		}
		if rec == nil {
			return apperr.NewNotFound("%s not found", cs.kind)
		}

		exists, err := cs.repo.NameExists(ctx, tx, name, id)
		if err != nil {
			return fmt.Errorf("check %s name: %w", cs.kind, err)
		}
		if exists {
			return apperr.NewConflict("%s with name %q already exists", cs.kind, name)
		}

		data := PT(rec).CatalogData()
		data.Name = name
		data.Active = input.Active
		data.Description = input.Description
		data.UpdatedAt = time.Now()

		if err := cs.repo.Save(ctx, tx, rec); err != nil {
			return fmt.Errorf("save %s: %w", cs.kind, err)
		}
		updated = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (cs *catalogService[T, PT]) Patch(ctx context.Context, id uuid.UUID, patch CatalogPatch) (*T, error) {
	var updated *T
	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := cs.repo.GetByID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("load %s: %w", cs.kind, err)
		}
		if rec == nil {
			return apperr.NewNotFound("%s not found", cs.kind)
		}

		data := PT(rec).CatalogData()
		if patch.Name != nil {
			name := strings.TrimSpace(*patch.Name)
			if name == "" {
				return apperr.NewValidation("name is required")
			}
			exists, err := cs.repo.NameExists(ctx, tx, name, id)
			if err != nil {
				return fmt.Errorf("check %s name: %w", cs.kind, err)
			}
			if exists {
				return apperr.NewConflict("%s with name %q already exists", cs.kind, name)
			}
			data.Name = name
		}
		if patch.Active != nil {
			data.Active = *patch.Active
		}
		if patch.Description != nil {
			data.Description = *patch.Description
		}
		data.UpdatedAt = time.Now()

		if err := cs.repo.Save(ctx, tx, rec); err != nil {
			return fmt.Errorf("save %s: %w", cs.kind, err)
		}
		updated = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (cs *catalogService[T, PT]) Delete(ctx context.Context, id uuid.UUID) error {
	return cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := cs.repo.GetByID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("load %s: %w", cs.kind, err)
		}
		if rec == nil {
			return apperr.NewNotFound("%s not found", cs.kind)
		}
		if cs.guard != nil {
			if err := cs.guard.Check(ctx, tx, id); err != nil {
				return err
			}
		}
		if err := cs.repo.Delete(ctx, tx, id); err != nil {
			return fmt.Errorf("delete %s: %w", cs.kind, err)
		}
		cs.log.Info("Deleted catalog entity", "id", id)
		return nil
	})
}

func (cs *catalogService[T, PT]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	rec, err := cs.repo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", cs.kind, err)
	}
	if rec == nil {
		return nil, apperr.NewNotFound("%s not found", cs.kind)
	}
	return rec, nil
}

func (cs *catalogService[T, PT]) List(ctx context.Context) ([]*T, error) {
	results, err := cs.repo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", cs.kind, err)
	}
	return results, nil
}
