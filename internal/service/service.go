package service

import (
	"github.com/rs/zerolog"

	"showtracker/internal/repository"
)

type Services struct {
	Show *ShowService
	Feed *FeedService
}

func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	feed := NewFeedService(log)

	return &Services{
		Show: NewShowService(repos.Show, feed, log),
		Feed: feed,
	}
}
