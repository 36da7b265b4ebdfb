package models

import "time"

// Rating holds exactly one row per user/exercise pair; a second rating from
// the same user overwrites value in place.
// Unique key: user_id + exercise_id.
type Rating struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID     int64     `gorm:"column:user_id;not null;uniqueIndex:uk_ratings_user_exercise,priority:1" json:"user_id"`
	ExerciseID int64     `gorm:"column:exercise_id;not null;uniqueIndex:uk_ratings_user_exercise,priority:2" json:"exercise_id"`
	User       *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Exercise   *Exercise `gorm:"foreignKey:ExerciseID;constraint:OnDelete:CASCADE" json:"-"`
	Value      int       `gorm:"column:value;not null" json:"value"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Rating) TableName() string { return "ratings" }
