package dao

import (
	"context"
	"errors"

	"FitHub/models"

	"gorm.io/gorm"
)

type FavoriteDAO struct {
	Repo[models.Favorite]
}

func NewFavoriteDAO(db *gorm.DB) *FavoriteDAO {
	return &FavoriteDAO{Repo: NewRepo[models.Favorite](db)}
}

// GetByUserExercise returns nil, nil when the pair has no favorite row.
func (d *FavoriteDAO) GetByUserExercise(ctx context.Context, userID, exerciseID int64) (*models.Favorite, error) {
	var item models.Favorite
	err := d.Db.WithContext(ctx).Where("user_id = ? AND exercise_id = ?", userID, exerciseID).Limit(1).Find(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// Toggle flips the favorite state for (userID, exerciseID) inside one
// transaction and reports the resulting state. A duplicate-key failure on
// insert means a concurrent call already created the row, so the state
// already reflects this action and the call succeeds as "favorited".
func (d *FavoriteDAO) Toggle(ctx context.Context, userID, exerciseID int64) (favorited bool, err error) {
	err = d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.Favorite
		e := tx.Where("user_id = ? AND exercise_id = ?", userID, exerciseID).Limit(1).Find(&item).Error
		if e != nil && !errors.Is(e, gorm.ErrRecordNotFound) {
			return e
		}
		if item.ID != 0 {
			favorited = false
			return tx.Delete(&models.Favorite{}, item.ID).Error
		}
		favorited = true
		e = tx.Create(&models.Favorite{UserID: userID, ExerciseID: exerciseID}).Error
		if errors.Is(e, gorm.ErrDuplicatedKey) {
			return nil
		}
		return e
	})
	return favorited, err
}

func (d *FavoriteDAO) CountByExercise(ctx context.Context, exerciseID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("exercise_id = ?", exerciseID).
		Count(&count).Error
	return count, err
}

// ListUsersByExercise projects the user side of the favorite relation.
func (d *FavoriteDAO) ListUsersByExercise(ctx context.Context, exerciseID int64) ([]*models.User, error) {
	var users []*models.User
	err := d.Db.WithContext(ctx).
		Table("favorites f").
		Select("u.id, u.username, u.created_at, u.updated_at").
		Joins("JOIN users u ON u.id = f.user_id").
		Where("f.exercise_id = ?", exerciseID).
		Order("f.created_at ASC").
		Scan(&users).Error
	if users == nil {
		users = []*models.User{}
	}
	return users, err
}
