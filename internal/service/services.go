package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/news-board-api/internal/models"
	"github.com/news-board-api/internal/repository"
	"github.com/news-board-api/internal/validation"
)

// TopicService defines the interface for topic operations
type TopicService interface {
	ListTopics(ctx context.Context) ([]models.Topic, error)
}

// UserService defines the interface for user operations
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, username string) (*models.User, error)
}

// ArticleService defines the interface for article operations
type ArticleService interface {
	ListArticles(ctx context.Context, q validation.ArticleQuery) ([]models.ArticleSummary, error)
	GetArticle(ctx context.Context, id int) (*models.Article, error)
	ListComments(ctx context.Context, articleID int) ([]models.Comment, error)
	AddComment(ctx context.Context, articleID int, in models.NewComment) (*models.Comment, error)
	VoteArticle(ctx context.Context, id, delta int) (*models.Article, error)
}

// CommentService defines the interface for comment operations
type CommentService interface {
	VoteComment(ctx context.Context, id, delta int) (*models.Comment, error)
	DeleteComment(ctx context.Context, id int) error
}

// StatsService reports table sizes
type StatsService interface {
	GetCount(ctx context.Context, table string) (int, error)
}

// SeedService defines the interface for fixture loading
type SeedService interface {
	Seed(ctx context.Context, dir string) (*SeedReport, error)
}

// Services holds all service interfaces
type Services struct {
	Topic   TopicService
	User    UserService
	Article ArticleService
	Comment CommentService
	Stats   StatsService
	Seed    SeedService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Topic:   newTopicService(repos, log),
		User:    newUserService(repos, log),
		Article: newArticleService(repos, log),
		Comment: newCommentService(repos, log),
		Stats:   newStatsService(repos),
		Seed:    newSeedService(repos, log),
	}
}
