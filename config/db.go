package config

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ConnectDB opens the MySQL connection pool. Pool bounds come from the
// config: a request that cannot get a connection within the driver's
// acquisition window fails rather than queueing forever.
func ConnectDB(cfg Config) *gorm.DB {
	db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	if err != nil {
		panic("Failed to connect to database: " + err.Error())
	}

	sqlDB, err := db.DB()
	if err != nil {
		panic("Failed to access connection pool: " + err.Error())
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	return db
}
