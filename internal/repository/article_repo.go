package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/news-board-api/internal/database"
	"github.com/news-board-api/internal/models"
	"github.com/news-board-api/internal/validation"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// List returns article summaries filtered and sorted per q
func (r *articleRepo) List(ctx context.Context, q validation.ArticleQuery) ([]models.ArticleSummary, error) {
	query, args, err := buildArticleListQuery(q)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	articles := make([]models.ArticleSummary, 0)
	for rows.Next() {
		var a models.ArticleSummary
		err := rows.Scan(
			&a.ArticleID, &a.Title, &a.Topic, &a.Author,
			&a.CreatedAt, &a.Votes, &a.CommentCount,
		)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// GetByID retrieves an article with its comment count, or nil if absent
func (r *articleRepo) GetByID(ctx context.Context, id int) (*models.Article, error) {
	query := `
		SELECT articles.article_id, articles.title, articles.topic, articles.author, articles.body,
			articles.created_at, articles.votes,
			COUNT(comments.comment_id)::INT AS comment_count
		FROM articles
		LEFT JOIN comments ON comments.article_id = articles.article_id
		WHERE articles.article_id = $1
		GROUP BY articles.article_id
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// Exists checks if an article with the given ID exists
func (r *articleRepo) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM articles WHERE article_id = $1)", id).Scan(&exists)
	return exists, err
}

// IncrementVotes adds delta to the article's votes and returns the updated
// article, or nil if no row matched
func (r *articleRepo) IncrementVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	query := `
		WITH updated AS (
			UPDATE articles SET votes = votes + $1 WHERE article_id = $2
			RETURNING article_id, title, topic, author, body, created_at, votes
		)
		SELECT updated.article_id, updated.title, updated.topic, updated.author, updated.body,
			updated.created_at, updated.votes,
			(SELECT COUNT(*) FROM comments WHERE comments.article_id = updated.article_id)::INT AS comment_count
		FROM updated
	`
	article, err := r.scanOne(r.db.QueryRowContext(ctx, query, delta, id))
	if err != nil {
		return nil, fmt.Errorf("increment article votes: %w", err)
	}
	return article, nil
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	return count, err
}

// BatchInsert inserts multiple articles using PostgreSQL COPY, keeping their
// ids, then moves the id sequence past them
func (r *articleRepo) BatchInsert(ctx context.Context, articles []*models.Article) (int, error) {
	now := time.Now()
	rows := make([][]interface{}, 0, len(articles))
	for _, a := range articles {
		createdAt := a.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		rows = append(rows, []interface{}{
			a.ArticleID, a.Title, a.Topic, a.Author, a.Body, createdAt, a.Votes,
		})
	}
	return copyIn(ctx, r.db, "articles",
		[]string{"article_id", "title", "topic", "author", "body", "created_at", "votes"},
		rows, syncSequenceSQL("articles", "article_id"),
	)
}

func (r *articleRepo) scanOne(row *sql.Row) (*models.Article, error) {
	var a models.Article
	err := row.Scan(
		&a.ArticleID, &a.Title, &a.Topic, &a.Author, &a.Body,
		&a.CreatedAt, &a.Votes, &a.CommentCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
