package repository

import (
	"errors"

	"showtracker/internal/models"
	"showtracker/internal/storage"
)

// ErrShowNotFound 表示指定 id 的影集不存在
var ErrShowNotFound = errors.New("show not found")

type Repositories struct {
	Show ShowRepository
}

// NewRepositories 建立以 SQL 資料庫為後端的 repositories
func NewRepositories(db *storage.DB) *Repositories {
	return &Repositories{
		Show: NewShowRepository(db),
	}
}

// NewMemoryRepositories 建立純記憶體的 repositories，seed 為初始資料
func NewMemoryRepositories(seed []models.Show) *Repositories {
	return &Repositories{
		Show: NewMemoryShowRepository(seed),
	}
}
