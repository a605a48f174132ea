package storage

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"showtracker/pkg/config"
)

// PostgresDSN 組出 PostgreSQL 連線字串
func PostgresDSN(c config.DBConfig) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
}

func NewPostgresDB(c config.DBConfig) (*DB, error) {
	db, err := gorm.Open(postgres.Open(PostgresDSN(c)), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DB{DB: db}, nil
}
