package storage

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"showtracker/pkg/config"
)

// DB 包裝 gorm 連線，供 SQL 類型的儲存驅動共用
type DB struct {
	*gorm.DB
}

// Open 依照設定開啟對應驅動的資料庫連線
// memory 驅動不需要連線，回傳 nil
func Open(cfg *config.Config) (*DB, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		return NewPostgresDB(cfg.DB)
	case config.DriverSQLite:
		return NewSQLiteDB(cfg.Store.SQLitePath)
	case config.DriverMemory:
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

func gormConfig() *gorm.Config {
	return &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AutoMigrate 自動遷移資料庫結構
func (db *DB) AutoMigrate(models ...interface{}) error {
	return db.DB.AutoMigrate(models...)
}
