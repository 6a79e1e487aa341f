package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AnshRaj112/guildhall-backend/internal/models"
)

type UserRepository struct {
	db *gorm.DB
}

func (r UserRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Order("id").Find(&users).Error
	return users, err
}

func (r UserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r UserRepository) FindUserByName(ctx context.Context, name string) (*models.User, error) {
	return r.findOne(ctx, "name = ?", name)
}

func (r UserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r UserRepository) FindUserByPseudo(ctx context.Context, pseudo string) (*models.User, error) {
	return r.findOne(ctx, "pseudo = ?", pseudo)
}

func (r UserRepository) findOne(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	ok, err := first(r.db.WithContext(ctx), &user, query, arg)
	if !ok {
		return nil, err
	}
	return &user, nil
}

func (r UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(user).Error
}

// Update writes every column of patch to the user with the given id. An empty
// PasswordHash keeps the stored hash.
func (r UserRepository) Update(ctx context.Context, id uint, patch *models.User) error {
	columns := []string{"Name", "Pseudo", "Email", "Country", "BirthDate", "NumTel"}
	if patch.PasswordHash != "" {
		columns = append(columns, "PasswordHash")
	}
	patch.ID = id
	return affected(r.db.WithContext(ctx).Model(patch).Select(columns).Updates(patch))
}

func (r UserRepository) Delete(ctx context.Context, id uint) error {
	return affected(r.db.WithContext(ctx).Delete(&models.User{}, id))
}
