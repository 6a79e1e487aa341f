package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AnshRaj112/guildhall-backend/internal/models"
)

type ProfileRepository struct {
	db *gorm.DB
}

func (r ProfileRepository) List(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.WithContext(ctx).Order("id").Find(&profiles).Error
	return profiles, err
}

func (r ProfileRepository) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	var profile models.Profile
	ok, err := first(r.db.WithContext(ctx), &profile, id)
	if !ok {
		return nil, err
	}
	return &profile, nil
}

func (r ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(profile).Error
}

func (r ProfileRepository) Update(ctx context.Context, id uint, patch *models.Profile) error {
	patch.ID = id
	return affected(r.db.WithContext(ctx).Model(patch).
		Select("UserID", "Description", "Img", "ConnectionID", "IsPrivate", "Status", "Banner").
		Updates(patch))
}

// SetImage replaces a single image column, "img" or "banner".
func (r ProfileRepository) SetImage(ctx context.Context, id uint, column, url string) error {
	return affected(r.db.WithContext(ctx).Model(&models.Profile{ID: id}).Update(column, url))
}

func (r ProfileRepository) Delete(ctx context.Context, id uint) error {
	return affected(r.db.WithContext(ctx).Delete(&models.Profile{}, id))
}

// DeleteByUser removes every profile of userID and returns how many went.
func (r ProfileRepository) DeleteByUser(ctx context.Context, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Profile{})
	return res.RowsAffected, res.Error
}
