package models

import "time"

// Exercise is an owned content item. Owner is fixed at creation; visibility
// controls who may modify it (see service.CanAccess).
type Exercise struct {
	ID          int64     `gorm:"column:id;primaryKey" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(100);not null;uniqueIndex:uk_name;index:idx_name_difficulty,priority:1" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Difficulty  int       `gorm:"column:difficulty;not null;index:idx_name_difficulty,priority:2" json:"difficulty"`
	IsPublic    bool      `gorm:"column:is_public;not null" json:"is_public"`
	OwnerID     int64     `gorm:"column:owner_id;not null;index:idx_owner" json:"owner_id"`
	Owner       *User     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Duration    *int      `gorm:"column:duration" json:"duration,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Exercise) TableName() string { return "exercises" }
