package dao

import (
	"context"
	"errors"
	"strings"

	"FitHub/models"
	"FitHub/types"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ExerciseDAO struct {
	Repo[models.Exercise]
}

func NewExerciseDAO(db *gorm.DB) *ExerciseDAO {
	return &ExerciseDAO{Repo: NewRepo[models.Exercise](db)}
}

// GetByID returns nil, nil when the exercise does not exist.
func (d *ExerciseDAO) GetByID(ctx context.Context, id int64) (*models.Exercise, error) {
	var item models.Exercise
	err := d.Db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&item).Error
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

// UpdateByID applies a column map to one exercise.
func (d *ExerciseDAO) UpdateByID(ctx context.Context, id int64, data map[string]any) error {
	return d.Db.WithContext(ctx).
		Model(&models.Exercise{}).
		Where("id = ?", id).
		Updates(data).Error
}

// DeleteCascade removes the exercise and its engagement rows in one
// transaction, so the store never holds favorites/saves/ratings pointing at
// a missing exercise even when the backing DB has no FK cascade.
func (d *ExerciseDAO) DeleteCascade(ctx context.Context, id int64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("exercise_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("exercise_id = ?", id).Delete(&models.Save{}).Error; err != nil {
			return err
		}
		if err := tx.Where("exercise_id = ?", id).Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Exercise{}, id).Error
	})
}

// ListVisible returns the union of public exercises and the caller's own,
// narrowed by the ANDed filter, each annotated with live favorite/save
// counts. Counts are correlated subqueries, never cached columns.
func (d *ExerciseDAO) ListVisible(ctx context.Context, callerID int64, filter types.ExerciseFilter) ([]*types.ExerciseListItem, error) {
	q := d.Db.WithContext(ctx).
		Model(&models.Exercise{}).
		Select("exercises.*, " +
			"(SELECT COUNT(*) FROM favorites WHERE favorites.exercise_id = exercises.id) AS favorite_count, " +
			"(SELECT COUNT(*) FROM saves WHERE saves.exercise_id = exercises.id) AS save_count").
		Where(d.Db.Where("is_public = ?", true).Or("owner_id = ?", callerID))

	if filter.Name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.Description != "" {
		q = q.Where("LOWER(description) LIKE ?", "%"+strings.ToLower(filter.Description)+"%")
	}
	if filter.Difficulty != nil {
		q = q.Where("difficulty = ?", *filter.Difficulty)
	}
	if filter.SortBy != "" {
		// column name passes through; an unknown field is the caller's error
		q = q.Order(clause.OrderByColumn{
			Column: clause.Column{Name: filter.SortBy},
			Desc:   filter.Order == "DESC",
		})
	}

	var items []*types.ExerciseListItem
	if err := q.Scan(&items).Error; err != nil {
		return nil, err
	}
	if items == nil {
		items = []*types.ExerciseListItem{}
	}
	return items, nil
}
