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

type AddressInput struct {
	UserID   uuid.UUID
	ComunaID uuid.UUID
	Street   string
	Number   string
	Extra    string
}

type AddressPatch struct {
	ComunaID *uuid.UUID
	Street   *string
	Number   *string
	Extra    *string
}

type AddressService interface {
	Create(ctx context.Context, input AddressInput) (*types.Address, error)
	Replace(ctx context.Context, addressID uuid.UUID, input AddressInput) (*types.Address, error)
	Patch(ctx context.Context, addressID uuid.UUID, patch AddressPatch) (*types.Address, error)
	Delete(ctx context.Context, addressID uuid.UUID) error
	GetByID(ctx context.Context, addressID uuid.UUID) (*types.Address, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*types.Address, error)
}

type addressService struct {
	db          *gorm.DB
	log         *logger.Logger
	addressRepo repos.AddressRepo
	userRepo    repos.UserRepo
	comunaRepo  repos.ComunaRepo
}

func NewAddressService(
	db *gorm.DB,
	baseLog *logger.Logger,
	addressRepo repos.AddressRepo,
	userRepo repos.UserRepo,
	comunaRepo repos.ComunaRepo,
) AddressService {
	serviceLog := baseLog.With("service", "AddressService")
	return &addressService{
		db:          db,
		log:         serviceLog,
		addressRepo: addressRepo,
		userRepo:    userRepo,
		comunaRepo:  comunaRepo,
	}
}

func (as *addressService) Create(ctx context.Context, input AddressInput) (*types.Address, error) {
	street := strings.TrimSpace(input.Street)
	if street == "" {
		return nil, apperr.NewValidation("street is required")
	}
	number := strings.TrimSpace(input.Number)
	if number == "" {
		return nil, apperr.NewValidation("number is required")
	}

	var created *types.Address
	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := as.userRepo.GetByID(ctx, tx, input.UserID)
		if err != nil {
			return fmt.Errorf("resolve user: %w", err)
		}
		if user == nil {
			return apperr.NewNotFound("user not found")
		}
		comuna, err := as.comunaRepo.GetByID(ctx, tx, input.ComunaID)
		if err != nil {
			return fmt.Errorf("resolve comuna: %w", err)
		}
		if comuna == nil {
			return apperr.NewNotFound("comuna not found")
		}

		now := time.Now()
		created = &types.Address{
			ID:        uuid.New(),
			UserID:    input.UserID,
			ComunaID:  input.ComunaID,
			Street:    street,
			Number:    number,
			Extra:     strings.TrimSpace(input.Extra),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := as.addressRepo.Create(ctx, tx, created); err != nil {
			return fmt.Errorf("create address: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (as *addressService) Replace(ctx context.Context, addressID uuid.UUID, input AddressInput) (*types.Address, error) {
	if input.ComunaID == uuid.Nil {
		return nil, apperr.NewValidation("comuna is required")
	}
	street := strings.TrimSpace(input.Street)
	if street == "" {
		return nil, apperr.NewValidation("street is required")
	}
	number := strings.TrimSpace(input.Number)
	if number == "" {
		return nil, apperr.NewValidation("number is required")
	}
	return as.Patch(ctx, addressID, AddressPatch{
		ComunaID: &input.ComunaID,
		Street:   &street,
		Number:   &number,
		Extra:    &input.Extra,
	})
}

func (as *addressService) Patch(ctx context.Context, addressID uuid.UUID, patch AddressPatch) (*types.Address, error) {
	var updated *types.Address
	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		address, err := as.addressRepo.GetByID(ctx, tx, addressID)
		if err != nil {
			return fmt.Errorf("load address: %w", err)
		}
		if address == nil {
			return apperr.NewNotFound("address not found")
		}

		if patch.ComunaID != nil {
			comuna, err := as.comunaRepo.GetByID(ctx, tx, *patch.ComunaID)
			if err != nil {
				return fmt.Errorf("resolve comuna: %w", err)
			}
			if comuna == nil {
				return apperr.NewNotFound("comuna not found")
			}
			address.ComunaID = *patch.ComunaID
		}
		if patch.Street != nil {
			street := strings.TrimSpace(*patch.Street)
			if street == "" {
				return apperr.NewValidation("street is required")
			}
			address.Street = street
		}
		if patch.Number != nil {
			number := strings.TrimSpace(*patch.Number)
			if number == "" {
				return apperr.NewValidation("number is required")
			}
			address.Number = number
		}
		if patch.Extra != nil {
			address.Extra = strings.TrimSpace(*patch.Extra)
		}
		address.UpdatedAt = time.Now()

		if err := as.addressRepo.Save(ctx, tx, address); err != nil {
			return fmt.Errorf("save address: %w", err)
		}
		updated = address
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete is unguarded: nothing references an address.
func (as *addressService) Delete(ctx context.Context, addressID uuid.UUID) error {
	return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		address, err := as.addressRepo.GetByID(ctx, tx, addressID)
		if err != nil {
			return fmt.Errorf("load address: %w", err)
		}
		if address == nil {
			return apperr.NewNotFound("address not found")
		}
		return as.addressRepo.Delete(ctx, tx, addressID)
	})
}

func (as *addressService) GetByID(ctx context.Context, addressID uuid.UUID) (*types.Address, error) {
	address, err := as.addressRepo.GetByID(ctx, nil, addressID)
	if err != nil {
		return nil, fmt.Errorf("load address: %w", err)
	}
	if address == nil {
		return nil, apperr.NewNotFound("address not found")
	}
	return address, nil
}

func (as *addressService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*types.Address, error) {
	user, err := as.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}
	if user == nil {
		return nil, apperr.NewNotFound("user not found")
	}
	results, err := as.addressRepo.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	return results, nil
}
