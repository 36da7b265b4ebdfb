package service

import (
	"context"

	"FitHub/dao"
	"FitHub/models"
	"FitHub/pkg/errs"
)

const (
	minRating = 1
	maxRating = 5
)

var _ IEngagementService = (*EngagementService)(nil)

type IEngagementService interface {
	ToggleFavorite(ctx context.Context, exerciseID, callerID int64) (favorited bool, err error)
	ToggleSave(ctx context.Context, exerciseID, callerID int64) (saved bool, err error)
	Rate(ctx context.Context, exerciseID, callerID int64, value int) error
	ListFavoriters(ctx context.Context, exerciseID int64) ([]*models.User, error)
}

// EngagementService covers the existence-gated tier: favoriting, saving and
// rating only require the target exercise to exist, not that the caller may
// view it. The visibility policy is deliberately not consulted here.
type EngagementService struct {
	ExerciseDAO *dao.ExerciseDAO
	FavoriteDAO *dao.FavoriteDAO
	SaveDAO     *dao.SaveDAO
	RatingDAO   *dao.RatingDAO
}

// ToggleFavorite flips the caller's favorite state, exactly one flip per call.
func (s *EngagementService) ToggleFavorite(ctx context.Context, exerciseID, callerID int64) (bool, error) {
	if err := s.requireExercise(ctx, exerciseID); err != nil {
		return false, err
	}
	return s.FavoriteDAO.Toggle(ctx, callerID, exerciseID)
}

// ToggleSave is the identical toggle protocol over the save relation.
func (s *EngagementService) ToggleSave(ctx context.Context, exerciseID, callerID int64) (bool, error) {
	if err := s.requireExercise(ctx, exerciseID); err != nil {
		return false, err
	}
	return s.SaveDAO.Toggle(ctx, callerID, exerciseID)
}

// Rate validates the value before any store I/O, then upserts the caller's
// rating: a second rating overwrites value in place, never a second row.
func (s *EngagementService) Rate(ctx context.Context, exerciseID, callerID int64, value int) error {
	if value < minRating || value > maxRating {
		return errs.Validationf("rating must be between %d and %d", minRating, maxRating)
	}
	if err := s.requireExercise(ctx, exerciseID); err != nil {
		return err
	}
	return s.RatingDAO.Upsert(ctx, callerID, exerciseID, value)
}

// ListFavoriters returns the users currently favoriting the exercise.
// This is an ungated read-model query.
func (s *EngagementService) ListFavoriters(ctx context.Context, exerciseID int64) ([]*models.User, error) {
	return s.FavoriteDAO.ListUsersByExercise(ctx, exerciseID)
}

func (s *EngagementService) requireExercise(ctx context.Context, exerciseID int64) error {
	exist, err := s.ExerciseDAO.IsExist(ctx, "id = ?", exerciseID)
	if err != nil {
		return err
	}
	if !exist {
		return errs.NotFoundf("exercise not found")
	}
	return nil
}
