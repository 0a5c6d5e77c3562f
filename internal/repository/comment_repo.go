package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/news-board-api/internal/database"
	"github.com/news-board-api/internal/models"
)

const commentColumns = "comment_id, body, article_id, author, votes, created_at"

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// ListByArticle returns an article's comments, newest first
func (r *commentRepo) ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE article_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *comment)
	}
	return comments, rows.Err()
}

// Create inserts a new comment and returns it with its generated fields
func (r *commentRepo) Create(ctx context.Context, articleID int, author, body string) (*models.Comment, error) {
	query := `
		INSERT INTO comments (article_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING ` + commentColumns

	comment, err := scanComment(r.db.QueryRowContext(ctx, query, articleID, author, body))
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	return comment, nil
}

// Exists checks if a comment with the given ID exists
func (r *commentRepo) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM comments WHERE comment_id = $1)", id).Scan(&exists)
	return exists, err
}

// IncrementVotes adds delta to the comment's votes and returns the updated
// comment, or nil if no row matched
func (r *commentRepo) IncrementVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	query := `UPDATE comments SET votes = votes + $1 WHERE comment_id = $2 RETURNING ` + commentColumns

	comment, err := scanComment(r.db.QueryRowContext(ctx, query, delta, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("increment comment votes: %w", err)
	}
	return comment, nil
}

// Delete removes a comment, reporting whether a row was deleted
func (r *commentRepo) Delete(ctx context.Context, id int) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE comment_id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete comment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Count returns the total number of comments
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comments").Scan(&count)
	return count, err
}

// BatchInsert inserts multiple comments using PostgreSQL COPY, keeping their
// ids, then moves the id sequence past them
func (r *commentRepo) BatchInsert(ctx context.Context, comments []*models.Comment) (int, error) {
	now := time.Now()
	rows := make([][]interface{}, 0, len(comments))
	for _, c := range comments {
		createdAt := c.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		rows = append(rows, []interface{}{
			c.CommentID, c.Body, c.ArticleID, c.Author, c.Votes, createdAt,
		})
	}
	return copyIn(ctx, r.db, "comments",
		[]string{"comment_id", "body", "article_id", "author", "votes", "created_at"},
		rows, syncSequenceSQL("comments", "comment_id"),
	)
}

func scanComment(s scanner) (*models.Comment, error) {
	var c models.Comment
	err := s.Scan(&c.CommentID, &c.Body, &c.ArticleID, &c.Author, &c.Votes, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
