package service

import (
	"context"
	"fmt"

	"github.com/news-board-api/internal/repository"
)

// Tables lists the board tables reported by StatsService
var Tables = []string{"topics", "users", "articles", "comments"}

type statsService struct {
	repos *repository.Repositories
}

func newStatsService(repos *repository.Repositories) *statsService {
	return &statsService{repos: repos}
}

// GetCount returns the number of rows in table
func (s *statsService) GetCount(ctx context.Context, table string) (int, error) {
	switch table {
	case "topics":
		return s.repos.Topic.Count(ctx)
	case "users":
		return s.repos.User.Count(ctx)
	case "articles":
		return s.repos.Article.Count(ctx)
	case "comments":
		return s.repos.Comment.Count(ctx)
	default:
		return 0, fmt.Errorf("unknown table: %s", table)
	}
}
