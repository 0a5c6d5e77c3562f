package service

import (
	"context"
	"fmt"

	"github.com/news-board-api/internal/apperr"
	"github.com/news-board-api/internal/repository"
)

// The require helpers turn a negative existence check into the
// entity-specific not found error.

func requireTopic(ctx context.Context, repos *repository.Repositories, slug string) error {
	exists, err := repos.Topic.Exists(ctx, slug)
	if err != nil {
		return fmt.Errorf("check topic: %w", err)
	}
	if !exists {
		return apperr.ErrTopicNotFound
	}
	return nil
}

func requireUser(ctx context.Context, repos *repository.Repositories, username string) error {
	exists, err := repos.User.Exists(ctx, username)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return apperr.ErrUserNotFound
	}
	return nil
}

func requireArticle(ctx context.Context, repos *repository.Repositories, id int) error {
	exists, err := repos.Article.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check article: %w", err)
	}
	if !exists {
		return apperr.ErrArticleNotFound
	}
	return nil
}

func requireComment(ctx context.Context, repos *repository.Repositories, id int) error {
	exists, err := repos.Comment.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check comment: %w", err)
	}
	if !exists {
		return apperr.ErrCommentNotFound
	}
	return nil
}
