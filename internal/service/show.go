package service

import (
	"context"

	"github.com/rs/zerolog"

	"showtracker/internal/metrics"
	"showtracker/internal/models"
	"showtracker/internal/repository"
)

// EventPublisher 接收影集變動事件
type EventPublisher interface {
	Publish(event models.ShowEvent)
}

// ShowPatch 描述部分更新，nil 欄位維持原值
type ShowPatch struct {
	Name         *string
	EpisodesSeen *int
}

type ShowService struct {
	showRepo  repository.ShowRepository
	publisher EventPublisher
	log       zerolog.Logger
}

func NewShowService(showRepo repository.ShowRepository, publisher EventPublisher, log zerolog.Logger) *ShowService {
	return &ShowService{
		showRepo:  showRepo,
		publisher: publisher,
		log:       log.With().Str("component", "show_service").Logger(),
	}
}

// ListShows 取得所有影集，minEpisodes 不為 nil 時只回傳已看集數 >= minEpisodes 的影集
func (s *ShowService) ListShows(ctx context.Context, minEpisodes *int) ([]models.Show, error) {
	shows, err := s.showRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if minEpisodes == nil {
		return shows, nil
	}

	filtered := make([]models.Show, 0, len(shows))
	for _, show := range shows {
		if show.EpisodesSeen >= *minEpisodes {
			filtered = append(filtered, show)
		}
	}
	return filtered, nil
}

func (s *ShowService) GetShow(ctx context.Context, id uint) (*models.Show, error) {
	return s.showRepo.FindByID(ctx, id)
}

func (s *ShowService) CreateShow(ctx context.Context, name string, episodesSeen int) (*models.Show, error) {
	show := &models.Show{
		Name:         name,
		EpisodesSeen: episodesSeen,
	}
	if err := s.showRepo.Create(ctx, show); err != nil {
		return nil, err
	}

	s.log.Info().Uint("id", show.ID).Str("name", show.Name).Msg("show created")
	metrics.ShowsTotal.Inc()
	s.publish(models.ShowCreated, *show)
	return show, nil
}

// UpdateShow 套用部分更新，id 本身不會被修改
func (s *ShowService) UpdateShow(ctx context.Context, id uint, patch ShowPatch) (*models.Show, error) {
	show, err := s.showRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		show.Name = *patch.Name
	}
	if patch.EpisodesSeen != nil {
		show.EpisodesSeen = *patch.EpisodesSeen
	}

	if err := s.showRepo.Update(ctx, show); err != nil {
		return nil, err
	}

	s.log.Info().Uint("id", show.ID).Msg("show updated")
	s.publish(models.ShowUpdated, *show)
	return show, nil
}

func (s *ShowService) DeleteShow(ctx context.Context, id uint) error {
	show, err := s.showRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.showRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Uint("id", id).Msg("show deleted")
	metrics.ShowsTotal.Dec()
	s.publish(models.ShowDeleted, *show)
	return nil
}

// SyncMetrics 以目前的影集數量初始化 shows_total
func (s *ShowService) SyncMetrics(ctx context.Context) error {
	count, err := s.showRepo.Count(ctx)
	if err != nil {
		return err
	}
	metrics.ShowsTotal.Set(float64(count))
	return nil
}

func (s *ShowService) publish(eventType models.ShowEventType, show models.Show) {
	metrics.ShowMutationsTotal.WithLabelValues(string(eventType)).Inc()
	if s.publisher != nil {
		s.publisher.Publish(models.NewShowEvent(eventType, show))
	}
}
