package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUserDAO,
	NewExerciseDAO,
	NewFavoriteDAO,
	NewSaveDAO,
	NewRatingDAO,
)
