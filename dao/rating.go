package dao

import (
	"context"
	"errors"
	"time"

	"FitHub/models"

	"gorm.io/gorm"
)

type RatingDAO struct {
	Repo[models.Rating]
}

func NewRatingDAO(db *gorm.DB) *RatingDAO {
	return &RatingDAO{Repo: NewRepo[models.Rating](db)}
}

// GetByUserExercise returns nil, nil when the pair has no rating row.
func (d *RatingDAO) GetByUserExercise(ctx context.Context, userID, exerciseID int64) (*models.Rating, error) {
	var item models.Rating
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

// Upsert keeps exactly one rating row per (userID, exerciseID): find the row
// inside one transaction, then update value in place or insert. A racing
// insert that loses on the unique key falls back to the update path, so the
// later value wins and no second row ever appears.
func (d *RatingDAO) Upsert(ctx context.Context, userID, exerciseID int64, value int) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.Rating
		err := tx.Where("user_id = ? AND exercise_id = ?", userID, exerciseID).Limit(1).Find(&item).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if item.ID != 0 {
			return tx.Model(&models.Rating{}).Where("id = ?", item.ID).
				Updates(map[string]any{"value": value, "updated_at": time.Now()}).Error
		}
		err = tx.Create(&models.Rating{UserID: userID, ExerciseID: exerciseID, Value: value}).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return tx.Model(&models.Rating{}).
				Where("user_id = ? AND exercise_id = ?", userID, exerciseID).
				Updates(map[string]any{"value": value, "updated_at": time.Now()}).Error
		}
		return err
	})
}
