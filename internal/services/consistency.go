package services

import (
	"context"

	jujuerrors "github.com/juju/errors"

	"github.com/AnshRaj112/guildhall-backend/internal/models"
	"github.com/AnshRaj112/guildhall-backend/internal/repository"
)

// The functions below keep Group.OwnerID and the owner's moderator membership
// in step. Each one runs inside the caller's transaction, so a failure of any
// step leaves neither the group nor its memberships changed.

// createGroupWithModerator inserts group and the owner's moderator membership.
func createGroupWithModerator(ctx context.Context, tx *repository.Store, group *models.Group) error {
	if err := tx.Groups().Create(ctx, group); err != nil {
		return jujuerrors.Annotate(err, "create group")
	}
	moderator := &models.UserGroup{UserID: group.OwnerID, GroupID: group.ID, IsMod: true}
	if err := tx.Memberships().Create(ctx, moderator); err != nil {
		return jujuerrors.Annotatef(err, "add owner %d as moderator", group.OwnerID)
	}
	return nil
}

// transferModerator demotes the previous owner's moderator membership, if any,
// and creates or promotes the new owner's membership.
func transferModerator(ctx context.Context, tx *repository.Store, groupID, from, to uint) error {
	previous, err := tx.Memberships().Get(ctx, from, groupID)
	if err != nil {
		return jujuerrors.Annotatef(err, "load membership of previous owner %d", from)
	}
	if previous != nil && previous.IsMod {
		if err := tx.Memberships().Update(ctx, from, groupID, false); err != nil {
			return jujuerrors.Annotatef(err, "demote previous owner %d", from)
		}
	}
	moderator := &models.UserGroup{UserID: to, GroupID: groupID, IsMod: true}
	if err := tx.Memberships().Upsert(ctx, moderator); err != nil {
		return jujuerrors.Annotatef(err, "promote new owner %d", to)
	}
	return nil
}

// deleteGroupCascade removes the memberships of groupID, then the group row.
// It returns the number of memberships removed.
func deleteGroupCascade(ctx context.Context, tx *repository.Store, groupID uint) (int64, error) {
	removed, err := tx.Memberships().DeleteByGroup(ctx, groupID)
	if err != nil {
		return 0, jujuerrors.Annotate(err, "delete memberships")
	}
	if err := tx.Groups().Delete(ctx, groupID); err != nil {
		return 0, jujuerrors.Annotate(err, "delete group")
	}
	return removed, nil
}
