package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"showtracker/internal/models"
	"showtracker/internal/storage"
)

type ShowRepository interface {
	FindAll(ctx context.Context) ([]models.Show, error)
	FindByID(ctx context.Context, id uint) (*models.Show, error)
	Create(ctx context.Context, show *models.Show) error
	Update(ctx context.Context, show *models.Show) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int, error)
}

type showRepository struct {
	db *storage.DB
}

func NewShowRepository(db *storage.DB) ShowRepository {
	return &showRepository{db: db}
}

func (r *showRepository) FindAll(ctx context.Context) ([]models.Show, error) {
	var shows []models.Show
	if err := r.db.WithContext(ctx).Order("id asc").Find(&shows).Error; err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}
	return shows, nil
}

func (r *showRepository) FindByID(ctx context.Context, id uint) (*models.Show, error) {
	var show models.Show
	err := r.db.WithContext(ctx).First(&show, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrShowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find show %d: %w", id, err)
	}
	return &show, nil
}

func (r *showRepository) Create(ctx context.Context, show *models.Show) error {
	// id 一律交給資料庫指派
	show.ID = 0
	if err := r.db.WithContext(ctx).Create(show).Error; err != nil {
		return fmt.Errorf("failed to create show: %w", err)
	}
	return nil
}

// Update 以整筆覆蓋的方式更新，id 不存在時回傳 ErrShowNotFound
func (r *showRepository) Update(ctx context.Context, show *models.Show) error {
	res := r.db.WithContext(ctx).Model(&models.Show{}).
		Where("id = ?", show.ID).
		Updates(map[string]interface{}{
			"name":          show.Name,
			"episodes_seen": show.EpisodesSeen,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update show %d: %w", show.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrShowNotFound
	}
	return nil
}

func (r *showRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Show{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete show %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrShowNotFound
	}
	return nil
}

func (r *showRepository) Count(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Show{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count shows: %w", err)
	}
	return int(count), nil
}

// Seed 只在資料表為空時寫入初始資料，避免重新啟動後刪除過的影集又出現
func Seed(ctx context.Context, db *storage.DB, shows []models.Show) error {
	if len(shows) == 0 {
		return nil
	}

	count, err := NewShowRepository(db).Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := db.WithContext(ctx).Create(&shows).Error; err != nil {
		return fmt.Errorf("failed to seed shows: %w", err)
	}

	// 明確指定 id 寫入後，PostgreSQL 的序列不會前進
	if db.Dialector.Name() == "postgres" {
		err := db.WithContext(ctx).
			Exec("SELECT setval(pg_get_serial_sequence('shows', 'id'), (SELECT MAX(id) FROM shows))").Error
		if err != nil {
			return fmt.Errorf("failed to reset show id sequence: %w", err)
		}
	}
	return nil
}
