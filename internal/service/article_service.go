package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/news-board-api/internal/apperr"
	"github.com/news-board-api/internal/models"
	"github.com/news-board-api/internal/repository"
	"github.com/news-board-api/internal/validation"
)

type articleService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newArticleService(repos *repository.Repositories, log zerolog.Logger) *articleService {
	return &articleService{
		repos: repos,
		log:   log.With().Str("service", "article").Logger(),
	}
}

// ListArticles returns the article summaries matching q. A topic filter must
// name an existing topic; an existing topic without articles yields an empty
// list.
func (s *articleService) ListArticles(ctx context.Context, q validation.ArticleQuery) ([]models.ArticleSummary, error) {
	if q.HasTopic {
		if err := requireTopic(ctx, s.repos, q.Topic); err != nil {
			return nil, err
		}
	}

	articles, err := s.repos.Article.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// GetArticle returns one article with its comment count
func (s *articleService) GetArticle(ctx context.Context, id int) (*models.Article, error) {
	if err := requireArticle(ctx, s.repos, id); err != nil {
		return nil, err
	}

	article, err := s.repos.Article.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, apperr.ErrArticleNotFound
	}
	return article, nil
}

// ListComments returns an article's comments, newest first
func (s *articleService) ListComments(ctx context.Context, articleID int) ([]models.Comment, error) {
	if err := requireArticle(ctx, s.repos, articleID); err != nil {
		return nil, err
	}

	comments, err := s.repos.Comment.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// AddComment posts a comment on an article as an existing user
func (s *articleService) AddComment(ctx context.Context, articleID int, in models.NewComment) (*models.Comment, error) {
	if err := requireArticle(ctx, s.repos, articleID); err != nil {
		return nil, err
	}
	if err := requireUser(ctx, s.repos, in.Username); err != nil {
		return nil, err
	}

	comment, err := s.repos.Comment.Create(ctx, articleID, in.Username, in.Body)
	if err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}

	s.log.Info().
		Int("article_id", articleID).
		Int("comment_id", comment.CommentID).
		Str("author", comment.Author).
		Msg("Comment created")

	return comment, nil
}

// VoteArticle adds delta to the article's votes
func (s *articleService) VoteArticle(ctx context.Context, id, delta int) (*models.Article, error) {
	if err := requireArticle(ctx, s.repos, id); err != nil {
		return nil, err
	}

	article, err := s.repos.Article.IncrementVotes(ctx, id, delta)
	if err != nil {
		return nil, fmt.Errorf("vote article: %w", err)
	}
	// deleted after the existence check
	if article == nil {
		return nil, apperr.ErrArticleNotFound
	}
	return article, nil
}
