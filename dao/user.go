package dao

import (
	"context"

	"FitHub/models"

	"gorm.io/gorm"
)

type UserDAO struct {
	Repo[models.User]
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{Repo: NewRepo[models.User](db)}
}

func (u *UserDAO) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "username = ?", username)
}

func (u *UserDAO) FindByID(ctx context.Context, id int64) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "id = ?", id)
}

func (u *UserDAO) IsUsernameExist(ctx context.Context, username string) bool {
	exist, _ := u.Repo.IsExist(ctx, "username = ?", username)
	return exist
}

func (u *UserDAO) UpdateByID(ctx context.Context, id int64, data map[string]any) error {
	if id <= 0 {
		return gorm.ErrRecordNotFound
	}
	return u.Db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(data).Error
}
