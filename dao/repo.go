package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo is the generic base embedded by every entity DAO.
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r Repo[T]) Create(ctx context.Context, item *T) error {
	return r.Db.WithContext(ctx).Create(item).Error
}

// FindByWhere returns gorm.ErrRecordNotFound when no row matches.
func (r Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	var model T
	err := r.Db.WithContext(ctx).Model(&model).Where(where, args...).Limit(1).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
