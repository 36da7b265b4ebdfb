package service

import (
	"context"
	"errors"
	"time"

	"FitHub/dao"
	"FitHub/models"
	"FitHub/pkg/errs"
	"FitHub/pkg/snowflake"
	"FitHub/types"

	"gorm.io/gorm"
)

var _ IExerciseService = (*ExerciseService)(nil)

type IExerciseService interface {
	Create(ctx context.Context, callerID int64, req *types.CreateExerciseRequest) (*models.Exercise, error)
	Update(ctx context.Context, id int64, callerID int64, req *types.UpdateExerciseRequest) (*models.Exercise, error)
	Delete(ctx context.Context, id int64, callerID int64) error
	FindOne(ctx context.Context, id int64, callerID int64) (*types.ExerciseView, error)
	FindAll(ctx context.Context, callerID int64, filter types.ExerciseFilter) ([]*types.ExerciseListItem, error)
}

type ExerciseService struct {
	ExerciseDAO *dao.ExerciseDAO
	FavoriteDAO *dao.FavoriteDAO
	SaveDAO     *dao.SaveDAO
}

// Create persists a new exercise owned by the caller. Ownership is fixed
// here and never reassigned.
func (s *ExerciseService) Create(ctx context.Context, callerID int64, req *types.CreateExerciseRequest) (*models.Exercise, error) {
	if req.Name == "" {
		return nil, errs.Validationf("exercise name must not be empty")
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	ex := &models.Exercise{
		ID:          snowflake.GenID(),
		Name:        req.Name,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		IsPublic:    isPublic,
		OwnerID:     callerID,
		Duration:    req.Duration,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.ExerciseDAO.Create(ctx, ex); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.Conflictf("exercise name already taken")
		}
		return nil, err
	}
	return ex, nil
}

// Update applies a partial patch. Only non-nil fields change; a pointer to a
// zero value clears the field rather than being skipped.
func (s *ExerciseService) Update(ctx context.Context, id int64, callerID int64, req *types.UpdateExerciseRequest) (*models.Exercise, error) {
	ex, err := s.ExerciseDAO.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ex == nil {
		return nil, errs.NotFoundf("exercise not found")
	}
	if !CanAccess(ex, callerID, ActionModify) {
		return nil, errs.Forbiddenf("you do not have permission to modify this exercise")
	}

	updates := map[string]any{}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, errs.Validationf("exercise name must not be empty")
		}
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Difficulty != nil {
		updates["difficulty"] = *req.Difficulty
	}
	if req.IsPublic != nil {
		updates["is_public"] = *req.IsPublic
	}
	if req.Duration != nil {
		updates["duration"] = *req.Duration
	}
	if len(updates) == 0 {
		return ex, nil
	}
	updates["updated_at"] = time.Now()

	if err := s.ExerciseDAO.UpdateByID(ctx, id, updates); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.Conflictf("exercise name already taken")
		}
		return nil, err
	}
	return s.ExerciseDAO.GetByID(ctx, id)
}

func (s *ExerciseService) Delete(ctx context.Context, id int64, callerID int64) error {
	ex, err := s.ExerciseDAO.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ex == nil {
		return errs.NotFoundf("exercise not found")
	}
	if !CanAccess(ex, callerID, ActionDelete) {
		return errs.Forbiddenf("you do not have permission to delete this exercise")
	}
	return s.ExerciseDAO.DeleteCascade(ctx, id)
}

// FindOne returns the narrow single-item projection: no difficulty,
// visibility, duration or ratings, only identity plus live counts.
func (s *ExerciseService) FindOne(ctx context.Context, id int64, callerID int64) (*types.ExerciseView, error) {
	ex, err := s.ExerciseDAO.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ex == nil {
		return nil, errs.NotFoundf("exercise not found")
	}
	if !CanAccess(ex, callerID, ActionRead) {
		return nil, errs.Forbiddenf("you do not have permission to view this exercise")
	}

	favCount, err := s.FavoriteDAO.CountByExercise(ctx, id)
	if err != nil {
		return nil, err
	}
	saveCount, err := s.SaveDAO.CountByExercise(ctx, id)
	if err != nil {
		return nil, err
	}

	return &types.ExerciseView{
		ID:            ex.ID,
		Name:          ex.Name,
		Description:   ex.Description,
		OwnerID:       ex.OwnerID,
		FavoriteCount: favCount,
		SaveCount:     saveCount,
	}, nil
}

func (s *ExerciseService) FindAll(ctx context.Context, callerID int64, filter types.ExerciseFilter) ([]*types.ExerciseListItem, error) {
	return s.ExerciseDAO.ListVisible(ctx, callerID, filter)
}
