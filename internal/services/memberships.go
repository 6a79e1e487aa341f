package services

import (
	"context"

	"github.com/AnshRaj112/guildhall-backend/internal/apperror"
	"github.com/AnshRaj112/guildhall-backend/internal/models"
	"github.com/AnshRaj112/guildhall-backend/internal/repository"
	"github.com/AnshRaj112/guildhall-backend/internal/validation"
)

const (
	entityMembership = "membership"

	msgAlreadyMember    = "user is already a member of this group"
	msgModeratorIsOwner = "only the group owner is the moderator"
	msgOwnerCannotLeave = "the group owner cannot leave the group, transfer ownership first"
)

// MembershipService manages UserGroup rows outside of the moderator row,
// which only follows group ownership.
type MembershipService struct {
	base
}

// ListByGroup returns the members of groupID.
func (s *MembershipService) ListByGroup(ctx context.Context, groupID uint) ([]models.UserGroup, error) {
	group, err := s.store.Groups().GetByID(ctx, groupID)
	if err == nil && group == nil {
		err = apperror.NotFound(entityGroup, groupID)
	}
	if err != nil {
		return nil, s.fail(ctx, entityMembership, "list by group", groupID, err)
	}
	rows, err := s.store.Memberships().ListByGroup(ctx, groupID)
	if err != nil {
		return nil, s.fail(ctx, entityMembership, "list by group", groupID, err)
	}
	return rows, nil
}

// ListByUser returns the memberships of userID.
func (s *MembershipService) ListByUser(ctx context.Context, userID uint) ([]models.UserGroup, error) {
	user, err := s.store.Users().GetByID(ctx, userID)
	if err == nil && user == nil {
		err = apperror.NotFound(entityUser, userID)
	}
	if err != nil {
		return nil, s.fail(ctx, entityMembership, "list by user", userID, err)
	}
	rows, err := s.store.Memberships().ListByUser(ctx, userID)
	if err != nil {
		return nil, s.fail(ctx, entityMembership, "list by user", userID, err)
	}
	return rows, nil
}

func (s *MembershipService) Get(ctx context.Context, groupID, userID uint) (*models.UserGroup, error) {
	row, err := s.store.Memberships().Get(ctx, userID, groupID)
	if err == nil && row == nil {
		err = apperror.NotFound(entityMembership, userID)
	}
	if err != nil {
		return nil, s.fail(ctx, entityMembership, "get", userID, err)
	}
	return row, nil
}

// Add creates a membership. Only the owner may hold the moderator flag, and
// the owner's row exists from group creation on, so new rows are plain members.
func (s *MembershipService) Add(ctx context.Context, in models.UserGroupInput) (*models.UserGroup, error) {
	row, err := validation.UserGroup(in)
	if err != nil {
		return nil, s.fail(ctx, entityMembership, "add", 0, err)
	}
	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		group, err := tx.Groups().Lock(ctx, row.GroupID)
		if err != nil {
			return err
		}
		if group == nil {
			return apperror.NotFound(entityGroup, row.GroupID)
		}
		if err := requireUser(ctx, tx, row.UserID); err != nil {
			return err
		}
		existing, err := tx.Memberships().Get(ctx, row.UserID, row.GroupID)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperror.Conflict(msgAlreadyMember, nil)
		}
		if row.IsMod && row.UserID != group.OwnerID {
			return apperror.Conflict(msgModeratorIsOwner, nil)
		}
		return tx.Memberships().Create(ctx, row)
	})
	if err != nil {
		return nil, s.fail(ctx, entityMembership, "add", row.UserID, err)
	}
	return row, nil
}

// SetModerator changes the moderator flag of an existing membership. The flag
// must stay true for the owner and false for everyone else; ownership moves
// through GroupService.Update.
func (s *MembershipService) SetModerator(ctx context.Context, groupID, userID uint, isMod bool) (*models.UserGroup, error) {
	var updated *models.UserGroup
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		group, row, err := lockMembership(ctx, tx, groupID, userID)
		if err != nil {
			return err
		}
		if isMod != (userID == group.OwnerID) {
			return apperror.Conflict(msgModeratorIsOwner, nil)
		}
		if row.IsMod != isMod {
			if err := tx.Memberships().Update(ctx, userID, groupID, isMod); err != nil {
				return err
			}
			row.IsMod = isMod
		}
		updated = row
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, entityMembership, "set moderator", userID, err)
	}
	return updated, nil
}

// Remove deletes a membership. The owner's moderator row cannot be removed.
func (s *MembershipService) Remove(ctx context.Context, groupID, userID uint) error {
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		group, _, err := lockMembership(ctx, tx, groupID, userID)
		if err != nil {
			return err
		}
		if userID == group.OwnerID {
			return apperror.Conflict(msgOwnerCannotLeave, nil)
		}
		return tx.Memberships().Delete(ctx, userID, groupID)
	})
	if err != nil {
		return s.fail(ctx, entityMembership, "remove", userID, err)
	}
	return nil
}

// lockMembership locks the group row and loads the (user, group) membership,
// failing with NotFound when either is missing.
func lockMembership(ctx context.Context, tx *repository.Store, groupID, userID uint) (*models.Group, *models.UserGroup, error) {
	group, err := tx.Groups().Lock(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}
	if group == nil {
		return nil, nil, apperror.NotFound(entityGroup, groupID)
	}
	row, err := tx.Memberships().Get(ctx, userID, groupID)
	if err != nil {
		return nil, nil, err
	}
	if row == nil {
		return nil, nil, apperror.NotFound(entityMembership, userID)
	}
	return group, row, nil
}
