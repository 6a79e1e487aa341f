package services

import (
	"context"
	"fmt"

	"github.com/AnshRaj112/guildhall-backend/internal/apperror"
	"github.com/AnshRaj112/guildhall-backend/internal/models"
	"github.com/AnshRaj112/guildhall-backend/internal/repository"
	"github.com/AnshRaj112/guildhall-backend/internal/validation"
	"github.com/AnshRaj112/guildhall-backend/pkg/utils"
)

const entityUser = "user"

type UserService struct {
	base
	validator  *validation.UserValidator
	bcryptCost int
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.store.Users().List(ctx)
	if err != nil {
		return nil, s.fail(ctx, entityUser, "list", 0, err)
	}
	return users, nil
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.store.Users().GetByID(ctx, id)
	if err == nil && user == nil {
		err = apperror.NotFound(entityUser, id)
	}
	if err != nil {
		return nil, s.fail(ctx, entityUser, "get", id, err)
	}
	return user, nil
}

// Create registers a user. The password is required and stored as a bcrypt hash.
func (s *UserService) Create(ctx context.Context, in models.UserInput) (*models.User, error) {
	user, err := s.validator.Validate(ctx, in, 0, true)
	if err != nil {
		return nil, s.fail(ctx, entityUser, "create", 0, err)
	}
	if user.PasswordHash, err = utils.HashPassword(in.Password, s.bcryptCost); err != nil {
		return nil, s.fail(ctx, entityUser, "create", 0, err)
	}
	if err := s.store.Users().Create(ctx, user); err != nil {
		return nil, s.fail(ctx, entityUser, "create", 0, err)
	}
	return user, nil
}

// Update replaces the user's fields. An empty password keeps the stored one.
func (s *UserService) Update(ctx context.Context, id uint, in models.UserInput) (*models.User, error) {
	existing, err := s.store.Users().GetByID(ctx, id)
	if err == nil && existing == nil {
		err = apperror.NotFound(entityUser, id)
	}
	if err != nil {
		return nil, s.fail(ctx, entityUser, "update", id, err)
	}

	patch, err := s.validator.Validate(ctx, in, id, false)
	if err != nil {
		return nil, s.fail(ctx, entityUser, "update", id, err)
	}
	if in.Password != "" {
		if patch.PasswordHash, err = utils.HashPassword(in.Password, s.bcryptCost); err != nil {
			return nil, s.fail(ctx, entityUser, "update", id, err)
		}
	}
	if err := s.store.Users().Update(ctx, id, patch); err != nil {
		return nil, s.fail(ctx, entityUser, "update", id, err)
	}
	updated, err := s.store.Users().GetByID(ctx, id)
	if err == nil && updated == nil {
		err = apperror.NotFound(entityUser, id)
	}
	if err != nil {
		return nil, s.fail(ctx, entityUser, "update", id, err)
	}
	return updated, nil
}

// Delete removes a user with their memberships and profiles. Users who still
// own groups are kept; their groups must be transferred or deleted first.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	var removed int64
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := requireUser(ctx, tx, id); err != nil {
			return err
		}
		owned, err := tx.Groups().CountByOwner(ctx, id)
		if err != nil {
			return err
		}
		if owned > 0 {
			return apperror.Conflict(fmt.Sprintf("user still owns %d group(s)", owned), nil)
		}
		if removed, err = tx.Memberships().DeleteByUser(ctx, id); err != nil {
			return err
		}
		if _, err := tx.Profiles().DeleteByUser(ctx, id); err != nil {
			return err
		}
		return tx.Users().Delete(ctx, id)
	})
	if err != nil {
		return s.fail(ctx, entityUser, "delete", id, err)
	}
	s.metrics.cascadedMemberships.Add(float64(removed))
	return nil
}
