package repository

import (
	"context"
	"database/sql"

	"github.com/news-board-api/internal/database"
	"github.com/news-board-api/internal/models"
)

// topicRepo is the concrete implementation of TopicRepository
type topicRepo struct {
	db *database.DB
}

// NewTopicRepo creates a new topic repository
func NewTopicRepo(db *database.DB) TopicRepository {
	return &topicRepo{db: db}
}

// List returns every topic
func (r *topicRepo) List(ctx context.Context) ([]models.Topic, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT slug, description FROM topics")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	topics := make([]models.Topic, 0)
	for rows.Next() {
		var topic models.Topic
		var description sql.NullString
		if err := rows.Scan(&topic.Slug, &description); err != nil {
			return nil, err
		}
		topic.Description = description.String
		topics = append(topics, topic)
	}
	return topics, rows.Err()
}

// Exists checks if a topic with the given slug exists
func (r *topicRepo) Exists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM topics WHERE slug = $1)", slug).Scan(&exists)
	return exists, err
}

// Count returns the total number of topics
func (r *topicRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM topics").Scan(&count)
	return count, err
}

// BatchInsert inserts multiple topics using PostgreSQL COPY
func (r *topicRepo) BatchInsert(ctx context.Context, topics []*models.Topic) (int, error) {
	rows := make([][]interface{}, 0, len(topics))
	for _, topic := range topics {
		rows = append(rows, []interface{}{topic.Slug, topic.Description})
	}
	return copyIn(ctx, r.db, "topics", []string{"slug", "description"}, rows, "")
}
