package models

import "time"

type User struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id"`
	Username     string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex:uk_username" json:"username"`
	Password     string    `gorm:"column:password;type:varchar(128);not null" json:"-"`
	RefreshToken string    `gorm:"column:refresh_token;type:varchar(128)" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string { return "users" }
