package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/news-board-api/internal/apperr"
	"github.com/news-board-api/internal/models"
	"github.com/news-board-api/internal/repository"
)

type commentService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newCommentService(repos *repository.Repositories, log zerolog.Logger) *commentService {
	return &commentService{
		repos: repos,
		log:   log.With().Str("service", "comment").Logger(),
	}
}

// VoteComment adds delta to the comment's votes
func (s *commentService) VoteComment(ctx context.Context, id, delta int) (*models.Comment, error) {
	if err := requireComment(ctx, s.repos, id); err != nil {
		return nil, err
	}

	comment, err := s.repos.Comment.IncrementVotes(ctx, id, delta)
	if err != nil {
		return nil, fmt.Errorf("vote comment: %w", err)
	}
	if comment == nil {
		return nil, apperr.ErrCommentNotFound
	}
	return comment, nil
}

// DeleteComment removes a comment
func (s *commentService) DeleteComment(ctx context.Context, id int) error {
	if err := requireComment(ctx, s.repos, id); err != nil {
		return err
	}

	deleted, err := s.repos.Comment.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if !deleted {
		return apperr.ErrCommentNotFound
	}

	s.log.Info().Int("comment_id", id).Msg("Comment deleted")
	return nil
}
