package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mvaldebenito/gamestore-backend/internal/apperr"
	"github.com/mvaldebenito/gamestore-backend/internal/logger"
	"github.com/mvaldebenito/gamestore-backend/internal/repos"
	"github.com/mvaldebenito/gamestore-backend/internal/types"
)

type UserInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Active    bool
}

type UserPatch struct {
	Email     *string
	Password  *string
	FirstName *string
	LastName  *string
	Active    *bool
}

type UserService interface {
	Create(ctx context.Context, input UserInput) (*types.User, error)
	Replace(ctx context.Context, userID uuid.UUID, input UserInput) (*types.User, error)
	Patch(ctx context.Context, userID uuid.UUID, patch UserPatch) (*types.User, error)
	Delete(ctx context.Context, userID uuid.UUID) error
	GetByID(ctx context.Context, userID uuid.UUID) (*types.User, error)
	List(ctx context.Context) ([]*types.User, error)
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
	guard    *DeleteGuard
}

func NewUserService(db *gorm.DB, baseLog *logger.Logger, userRepo repos.UserRepo, guard *DeleteGuard) UserService {
	serviceLog := baseLog.With("service", "UserService")
	return &userService{db: db, log: serviceLog, userRepo: userRepo, guard: guard}
}

func (us *userService) Create(ctx context.Context, input UserInput) (*types.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, apperr.NewValidation("email is required")
	}
	if strings.TrimSpace(input.Password) == "" {
		return nil, apperr.NewValidation("password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var created *types.User
	err = us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := us.userRepo.EmailExists(ctx, tx, email, uuid.Nil)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if exists {
			return apperr.NewConflict("user with email %q already exists", email)
		}

		now := time.Now()
		created = &types.User{
			ID:        uuid.New(),
			Email:     email,
			Password:  string(hash),
			FirstName: strings.TrimSpace(input.FirstName),
			LastName:  strings.TrimSpace(input.LastName),
			Active:    input.Active,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := us.userRepo.Create(ctx, tx, created); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	us.log.Info("Created user", "user_id", created.ID, "email", email)
	return created, nil
}

func (us *userService) Replace(ctx context.Context, userID uuid.UUID, input UserInput) (*types.User, error) {
	patch := UserPatch{
		Email:     &input.Email,
		FirstName: &input.FirstName,
		LastName:  &input.LastName,
		Active:    &input.Active,
	}
	if input.Password != "" {
		patch.Password = &input.Password
	}
	return us.Patch(ctx, userID, patch)
}

func (us *userService) Patch(ctx context.Context, userID uuid.UUID, patch UserPatch) (*types.User, error) {
	var updated *types.User
	err := us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := us.userRepo.GetByID(ctx, tx, userID)
		if err != nil {
			return fmt.Errorf("load user: %w", err)
		}
		if user == nil {
			return apperr.NewNotFound("user not found")
		}

		if patch.Email != nil {
			email := strings.ToLower(strings.TrimSpace(*patch.Email))
			if email == "" {
				return apperr.NewValidation("email is required")
			}
			exists, err := us.userRepo.EmailExists(ctx, tx, email, userID)
			if err != nil {
				return fmt.Errorf("check email: %w", err)
			}
			if exists {
				return apperr.NewConflict("user with email %q already exists", email)
			}
			user.Email = email
		}
		if patch.Password != nil {
			if strings.TrimSpace(*patch.Password) == "" {
				return apperr.NewValidation("password is required")
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			user.Password = string(hash)
		}
		if patch.FirstName != nil {
			user.FirstName = strings.TrimSpace(*patch.FirstName)
		}
		if patch.LastName != nil {
			user.LastName = strings.TrimSpace(*patch.LastName)
		}
		if patch.Active != nil {
			user.Active = *patch.Active
		}
		user.UpdatedAt = time.Now()

		if err := us.userRepo.Save(ctx, tx, user); err != nil {
			return fmt.Errorf("save user: %w", err)
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (us *userService) Delete(ctx context.Context, userID uuid.UUID) error {
	return us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := us.userRepo.GetByID(ctx, tx, userID)
		if err != nil {
			return fmt.Errorf("load user: %w", err)
		}
		if user == nil {
			return apperr.NewNotFound("user not found")
		}
		if us.guard != nil {
			if err := us.guard.Check(ctx, tx, userID); err != nil {
				return err
			}
		}
		if err := us.userRepo.Delete(ctx, tx, userID); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		us.log.Info("Deleted user", "user_id", userID)
		return nil
	})
}

func (us *userService) GetByID(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	user, err := us.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, apperr.NewNotFound("user not found")
	}
	return user, nil
}

func (us *userService) List(ctx context.Context) ([]*types.User, error) {
	results, err := us.userRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return results, nil
}
