package services

import (
	"context"

	"github.com/AnshRaj112/guildhall-backend/internal/apperror"
	"github.com/AnshRaj112/guildhall-backend/internal/models"
	"github.com/AnshRaj112/guildhall-backend/internal/repository"
	"github.com/AnshRaj112/guildhall-backend/internal/validation"
)

const entityGroup = "group"

type GroupService struct {
	base
}

func (s *GroupService) List(ctx context.Context) ([]models.Group, error) {
	groups, err := s.store.Groups().List(ctx)
	if err != nil {
		return nil, s.fail(ctx, entityGroup, "list", 0, err)
	}
	return groups, nil
}

func (s *GroupService) GetByID(ctx context.Context, id uint) (*models.Group, error) {
	group, err := s.store.Groups().GetByID(ctx, id)
	if err == nil && group == nil {
		err = apperror.NotFound(entityGroup, id)
	}
	if err != nil {
		return nil, s.fail(ctx, entityGroup, "get", id, err)
	}
	return group, nil
}

// Create stores a new group and makes its owner the moderator.
func (s *GroupService) Create(ctx context.Context, in models.GroupInput) (*models.Group, error) {
	group, err := validation.Group(in)
	if err != nil {
		return nil, s.fail(ctx, entityGroup, "create", 0, err)
	}
	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := requireUser(ctx, tx, group.OwnerID); err != nil {
			return err
		}
		return createGroupWithModerator(ctx, tx, group)
	})
	if err != nil {
		return nil, s.fail(ctx, entityGroup, "create", 0, err)
	}
	return group, nil
}

// Update replaces the group's fields. When the owner changes, the moderator
// flag moves from the previous owner's membership to the new owner's.
func (s *GroupService) Update(ctx context.Context, id uint, in models.GroupInput) (*models.Group, error) {
	var updated *models.Group
	transferred := false
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		existing, err := tx.Groups().Lock(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperror.NotFound(entityGroup, id)
		}

		patch, err := validation.Group(in)
		if err != nil {
			return err
		}
		if patch.OwnerID != existing.OwnerID {
			if err := requireUser(ctx, tx, patch.OwnerID); err != nil {
				return err
			}
			if err := transferModerator(ctx, tx, id, existing.OwnerID, patch.OwnerID); err != nil {
				return err
			}
			transferred = true
		}
		if err := tx.Groups().Update(ctx, id, patch); err != nil {
			return err
		}
		updated, err = tx.Groups().GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, entityGroup, "update", id, err)
	}
	if transferred {
		s.metrics.moderatorTransfers.Inc()
	}
	return updated, nil
}

// Delete removes the group together with all of its memberships.
func (s *GroupService) Delete(ctx context.Context, id uint) error {
	var removed int64
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		existing, err := tx.Groups().Lock(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperror.NotFound(entityGroup, id)
		}
		removed, err = deleteGroupCascade(ctx, tx, id)
		return err
	})
	if err != nil {
		return s.fail(ctx, entityGroup, "delete", id, err)
	}
	s.metrics.cascadedMemberships.Add(float64(removed))
	return nil
}

// requireUser fails with NotFound when no user has the given id.
func requireUser(ctx context.Context, tx *repository.Store, id uint) error {
	user, err := tx.Users().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound(entityUser, id)
	}
	return nil
}
