package dao

import (
	"context"
	"errors"

	"FitHub/models"

	"gorm.io/gorm"
)

type SaveDAO struct {
	Repo[models.Save]
}

func NewSaveDAO(db *gorm.DB) *SaveDAO {
	return &SaveDAO{Repo: NewRepo[models.Save](db)}
}

// GetByUserExercise returns nil, nil when the pair has no save row.
func (d *SaveDAO) GetByUserExercise(ctx context.Context, userID, exerciseID int64) (*models.Save, error) {
	var item models.Save
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

// Toggle mirrors FavoriteDAO.Toggle over the independent save relation.
func (d *SaveDAO) Toggle(ctx context.Context, userID, exerciseID int64) (saved bool, err error) {
	err = d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.Save
		e := tx.Where("user_id = ? AND exercise_id = ?", userID, exerciseID).Limit(1).Find(&item).Error
		if e != nil && !errors.Is(e, gorm.ErrRecordNotFound) {
			return e
		}
		if item.ID != 0 {
			saved = false
			return tx.Delete(&models.Save{}, item.ID).Error
		}
		saved = true
		e = tx.Create(&models.Save{UserID: userID, ExerciseID: exerciseID}).Error
		if errors.Is(e, gorm.ErrDuplicatedKey) {
			return nil
		}
		return e
	})
	return saved, err
}

func (d *SaveDAO) CountByExercise(ctx context.Context, exerciseID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Save{}).
		Where("exercise_id = ?", exerciseID).
		Count(&count).Error
	return count, err
}
