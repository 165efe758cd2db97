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

type ComunaInput struct {
	RegionID uuid.UUID
	Name     string
	Active   bool
}

type ComunaPatch struct {
	RegionID *uuid.UUID
	Name     *string
	Active   *bool
}

type ComunaService interface {
	Create(ctx context.Context, input ComunaInput) (*types.Comuna, error)
	Replace(ctx context.Context, comunaID uuid.UUID, input ComunaInput) (*types.Comuna, error)
	Patch(ctx context.Context, comunaID uuid.UUID, patch ComunaPatch) (*types.Comuna, error)
	Delete(ctx context.Context, comunaID uuid.UUID) error
	GetByID(ctx context.Context, comunaID uuid.UUID) (*types.Comuna, error)
	ListByRegion(ctx context.Context, regionID uuid.UUID) ([]*types.Comuna, error)
}

type comunaService struct {
	db         *gorm.DB
	log        *logger.Logger
	comunaRepo repos.ComunaRepo
	regionRepo repos.CatalogRepo[types.Region]
	guard      *DeleteGuard
}

func NewComunaService(
	db *gorm.DB,
	baseLog *logger.Logger,
	comunaRepo repos.ComunaRepo,
	regionRepo repos.CatalogRepo[types.Region],
	guard *DeleteGuard,
) ComunaService {
	serviceLog := baseLog.With("service", "ComunaService")
	return &comunaService{
		db:         db,
		log:        serviceLog,
		comunaRepo: comunaRepo,
		regionRepo: regionRepo,
		guard:      guard,
	}
}

func (cs *comunaService) Create(ctx context.Context, input ComunaInput) (*types.Comuna, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperr.NewValidation("name is required")
	}

	var created *types.Comuna
	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		region, err := cs.regionRepo.GetByID(ctx, tx, input.RegionID)
		if err != nil {
			return fmt.Errorf("resolve region: %w", err)
		}
		if region == nil {
			return apperr.NewNotFound("region not found")
		}

		exists, err := cs.comunaRepo.NameExistsInRegion(ctx, tx, input.RegionID, name, uuid.Nil)
		if err != nil {
			return fmt.Errorf("check comuna name: %w", err)
		}
		if exists {
			return apperr.NewConflict("comuna with name %q already exists in region", name)
		}

		now := time.Now()
		created = &types.Comuna{
			ID:        uuid.New(),
			RegionID:  input.RegionID,
			Name:      name,
			Active:    input.Active,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := cs.comunaRepo.Create(ctx, tx, created); err != nil {
			return fmt.Errorf("create comuna: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (cs *comunaService) Replace(ctx context.Context, comunaID uuid.UUID, input ComunaInput) (*types.Comuna, error) {
	if input.RegionID == uuid.Nil {
		return nil, apperr.NewValidation("region is required")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperr.NewValidation("name is required")
	}
	return cs.Patch(ctx, comunaID, ComunaPatch{
		RegionID: &input.RegionID,
		Name:     &name,
		Active:   &input.Active,
	})
}

func (cs *comunaService) Patch(ctx context.Context, comunaID uuid.UUID, patch ComunaPatch) (*types.Comuna, error) {
	var updated *types.Comuna
	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		comuna, err := cs.comunaRepo.GetByID(ctx, tx, comunaID)
		if err != nil {
			return fmt.Errorf("load comuna: %w", err)
		}
		if comuna == nil {
			return apperr.NewNotFound("comuna not found")
		}

		if patch.RegionID != nil {
			region, err := cs.regionRepo.GetByID(ctx, tx, *patch.RegionID)
			if err != nil {
				return fmt.Errorf("resolve region: %w", err)
			}
			if region == nil {
				return apperr.NewNotFound("region not found")
			}
			comuna.RegionID = *patch.RegionID
		}
		if patch.Name != nil {
			name := strings.TrimSpace(*patch.Name)
			if name == "" {
				return apperr.NewValidation("name is required")
			}
			exists, err := cs.comunaRepo.NameExistsInRegion(ctx, tx, comuna.RegionID, name, comunaID)
			if err != nil {
				return fmt.Errorf("check comuna name: %w", err)
			}
			if exists {
				return apperr.NewConflict("comuna with name %q already exists in region", name)
			}
			comuna.Name = name
		}
		if patch.Active != nil {
			comuna.Active = *patch.Active
		}
		comuna.UpdatedAt = time.Now()

		if err := cs.comunaRepo.Save(ctx, tx, comuna); err != nil {
			return fmt.Errorf("save comuna: %w", err)
		}
		updated = comuna
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (cs *comunaService) Delete(ctx context.Context, comunaID uuid.UUID) error {
	return cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		comuna, err := cs.comunaRepo.GetByID(ctx, tx, comunaID)
		if err != nil {
			return fmt.Errorf("load comuna: %w", err)
		}
		if comuna == nil {
			return apperr.NewNotFound("comuna not found")
		}
		if cs.guard != nil {
			if err := cs.guard.Check(ctx, tx, comunaID); err != nil {
				return err
			}
		}
		return cs.comunaRepo.Delete(ctx, tx, comunaID)
	})
}

func (cs *comunaService) GetByID(ctx context.Context, comunaID uuid.UUID) (*types.Comuna, error) {
	comuna, err := cs.comunaRepo.GetByID(ctx, nil, comunaID)
	if err != nil {
		return nil, fmt.Errorf("load comuna: %w", err)
	}
	if comuna == nil {
		return nil, apperr.NewNotFound("comuna not found")
	}
	return comuna, nil
}

func (cs *comunaService) ListByRegion(ctx context.Context, regionID uuid.UUID) ([]*types.Comuna, error) {
	region, err := cs.regionRepo.GetByID(ctx, nil, regionID)
	if err != nil {
		return nil, fmt.Errorf("resolve region: %w", err)
	}
	if region == nil {
		return nil, apperr.NewNotFound("region not found")
	}
	results, err := cs.comunaRepo.ListByRegion(ctx, nil, regionID)
	if err != nil {
		return nil, fmt.Errorf("list comunas: %w", err)
	}
	return results, nil
}
