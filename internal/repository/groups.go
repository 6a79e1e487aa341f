package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AnshRaj112/guildhall-backend/internal/models"
)

type GroupRepository struct {
	db *gorm.DB
}

func (r GroupRepository) List(ctx context.Context) ([]models.Group, error) {
	var groups []models.Group
	err := r.db.WithContext(ctx).Order("id").Find(&groups).Error
	return groups, err
}

func (r GroupRepository) GetByID(ctx context.Context, id uint) (*models.Group, error) {
	var group models.Group
	ok, err := first(r.db.WithContext(ctx), &group, id)
	if !ok {
		return nil, err
	}
	return &group, nil
}

// Lock reads the group row and holds a row lock on it until the surrounding
// transaction ends. SQLite has no row locks; its write lock serializes instead.
func (r GroupRepository) Lock(ctx context.Context, id uint) (*models.Group, error) {
	db := r.db.WithContext(ctx)
	if db.Dialector.Name() != "sqlite" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var group models.Group
	ok, err := first(db, &group, id)
	if !ok {
		return nil, err
	}
	return &group, nil
}

// CountByOwner returns how many groups ownerID owns.
func (r GroupRepository) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Group{}).Where("owner_id = ?", ownerID).Count(&n).Error
	return n, err
}

func (r GroupRepository) Create(ctx context.Context, group *models.Group) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(group).Error
}

// Update writes every column of patch, zero values included, to the group
// with the given id.
func (r GroupRepository) Update(ctx context.Context, id uint, patch *models.Group) error {
	patch.ID = id
	return affected(r.db.WithContext(ctx).Model(patch).
		Select("Name", "Description", "IsPublic", "OwnerID").
		Updates(patch))
}

func (r GroupRepository) Delete(ctx context.Context, id uint) error {
	return affected(r.db.WithContext(ctx).Delete(&models.Group{}, id))
}
