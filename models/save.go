package models

import "time"

// Save mirrors Favorite as an independent relation: a user may save without
// favoriting and vice versa.
// Unique key: user_id + exercise_id.
type Save struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID     int64     `gorm:"column:user_id;not null;uniqueIndex:uk_saves_user_exercise,priority:1" json:"user_id"`
	ExerciseID int64     `gorm:"column:exercise_id;not null;uniqueIndex:uk_saves_user_exercise,priority:2" json:"exercise_id"`
	User       *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Exercise   *Exercise `gorm:"foreignKey:ExerciseID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Save) TableName() string { return "saves" }
