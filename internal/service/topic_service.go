package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/news-board-api/internal/models"
	"github.com/news-board-api/internal/repository"
)

type topicService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newTopicService(repos *repository.Repositories, log zerolog.Logger) *topicService {
	return &topicService{
		repos: repos,
		log:   log.With().Str("service", "topic").Logger(),
	}
}

// ListTopics returns every topic
func (s *topicService) ListTopics(ctx context.Context) ([]models.Topic, error) {
	topics, err := s.repos.Topic.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}
