package database

import (
	"FitHub/config"
	"FitHub/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewDB opens the MySQL connection. TranslateError is on so unique-key
// violations surface as gorm.ErrDuplicatedKey instead of driver errors.
func NewDB(conf *config.Config) *gorm.DB {
	dsn := conf.MySQL.Dsn()
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}
	log.L.Info("connect database success")
	return db
}
