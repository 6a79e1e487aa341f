package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AnshRaj112/guildhall-backend/internal/models"
)

// MembershipRepository stores UserGroup rows, keyed by (user id, group id).
type MembershipRepository struct {
	db *gorm.DB
}

func (r MembershipRepository) List(ctx context.Context) ([]models.UserGroup, error) {
	var rows []models.UserGroup
	err := r.db.WithContext(ctx).Order("group_id, user_id").Find(&rows).Error
	return rows, err
}

func (r MembershipRepository) ListByGroup(ctx context.Context, groupID uint) ([]models.UserGroup, error) {
	var rows []models.UserGroup
	err := r.db.WithContext(ctx).Where("group_id = ?", groupID).Order("user_id").Find(&rows).Error
	return rows, err
}

func (r MembershipRepository) ListByUser(ctx context.Context, userID uint) ([]models.UserGroup, error) {
	var rows []models.UserGroup
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("group_id").Find(&rows).Error
	return rows, err
}

func (r MembershipRepository) Get(ctx context.Context, userID, groupID uint) (*models.UserGroup, error) {
	var row models.UserGroup
	ok, err := first(r.db.WithContext(ctx), &row, "user_id = ? AND group_id = ?", userID, groupID)
	if !ok {
		return nil, err
	}
	return &row, nil
}

func (r MembershipRepository) Create(ctx context.Context, row *models.UserGroup) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error
}

// Upsert inserts row, or overwrites the moderator flag of the existing
// (user, group) row.
func (r MembershipRepository) Upsert(ctx context.Context, row *models.UserGroup) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "group_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_mod"}),
	}).Create(row).Error
}

// Update sets the moderator flag of the (user, group) row.
func (r MembershipRepository) Update(ctx context.Context, userID, groupID uint, isMod bool) error {
	return affected(r.db.WithContext(ctx).Model(&models.UserGroup{}).
		Where("user_id = ? AND group_id = ?", userID, groupID).
		Update("is_mod", isMod))
}

func (r MembershipRepository) Delete(ctx context.Context, userID, groupID uint) error {
	return affected(r.db.WithContext(ctx).
		Where("user_id = ? AND group_id = ?", userID, groupID).
		Delete(&models.UserGroup{}))
}

// DeleteByGroup removes every membership of groupID and returns how many went.
func (r MembershipRepository) DeleteByGroup(ctx context.Context, groupID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("group_id = ?", groupID).Delete(&models.UserGroup{})
	return res.RowsAffected, res.Error
}

// DeleteByUser removes every membership of userID and returns how many went.
func (r MembershipRepository) DeleteByUser(ctx context.Context, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.UserGroup{})
	return res.RowsAffected, res.Error
}
