package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"FitHub/dao"
	"FitHub/models"
	"FitHub/pkg/encrypt"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway sqlite store with the full schema. The same
// TranslateError setting as production is on so unique-key violations map to
// gorm.ErrDuplicatedKey here too.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Exercise{},
		&models.Favorite{},
		&models.Save{},
		&models.Rating{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:  username,
		Password:  encrypt.HashPassword("secret"),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func newExerciseService(db *gorm.DB) *ExerciseService {
	return &ExerciseService{
		ExerciseDAO: dao.NewExerciseDAO(db),
		FavoriteDAO: dao.NewFavoriteDAO(db),
		SaveDAO:     dao.NewSaveDAO(db),
	}
}

func newEngagementService(db *gorm.DB) *EngagementService {
	return &EngagementService{
		ExerciseDAO: dao.NewExerciseDAO(db),
		FavoriteDAO: dao.NewFavoriteDAO(db),
		SaveDAO:     dao.NewSaveDAO(db),
		RatingDAO:   dao.NewRatingDAO(db),
	}
}

func ptrBool(b bool) *bool    { return &b }
func ptrInt(i int) *int       { return &i }
func ptrStr(s string) *string { return &s }

var testCtx = context.Background()
