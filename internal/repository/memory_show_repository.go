package repository

import (
	"context"
	"sync"

	"showtracker/internal/models"
)

// memoryShowRepository 以切片保存影集，查詢為線性掃描
type memoryShowRepository struct {
	mu     sync.RWMutex
	shows  []models.Show
	nextID uint
}

// NewMemoryShowRepository 建立記憶體版本的 ShowRepository
// 新的 id 從 seed 中最大的 id 之後開始遞增，刪除過的 id 不會重複使用
func NewMemoryShowRepository(seed []models.Show) ShowRepository {
	r := &memoryShowRepository{
		shows:  make([]models.Show, 0, len(seed)),
		nextID: 1,
	}
	for _, s := range seed {
		r.shows = append(r.shows, s)
		if s.ID >= r.nextID {
			r.nextID = s.ID + 1
		}
	}
	return r
}

func (r *memoryShowRepository) FindAll(ctx context.Context) ([]models.Show, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Show, len(r.shows))
	copy(out, r.shows)
	return out, nil
}

func (r *memoryShowRepository) FindByID(ctx context.Context, id uint) (*models.Show, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrShowNotFound
	}
	show := r.shows[i]
	return &show, nil
}

func (r *memoryShowRepository) Create(ctx context.Context, show *models.Show) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	show.ID = r.nextID
	r.nextID++
	r.shows = append(r.shows, *show)
	return nil
}

func (r *memoryShowRepository) Update(ctx context.Context, show *models.Show) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(show.ID)
	if i < 0 {
		return ErrShowNotFound
	}
	r.shows[i].Name = show.Name
	r.shows[i].EpisodesSeen = show.EpisodesSeen
	return nil
}

func (r *memoryShowRepository) Delete(ctx context.Context, id uint) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrShowNotFound
	}
	r.shows = append(r.shows[:i], r.shows[i+1:]...)
	return nil
}

func (r *memoryShowRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.shows), nil
}

// indexOf 呼叫端必須持有鎖
func (r *memoryShowRepository) indexOf(id uint) int {
	for i := range r.shows {
		if r.shows[i].ID == id {
			return i
		}
	}
	return -1
}
