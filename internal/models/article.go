package models

import (
	"time"
)

// Article represents an article with its derived comment count
type Article struct {
	ArticleID    int       `json:"article_id" db:"article_id"`
	Title        string    `json:"title" db:"title"`
	Topic        string    `json:"topic" db:"topic"`
	Author       string    `json:"author" db:"author"`
	Body         string    `json:"body" db:"body"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	Votes        int       `json:"votes" db:"votes"`
	CommentCount int       `json:"comment_count" db:"comment_count"`
}

// ArticleSummary is the listing shape of an article; it leaves out the body
type ArticleSummary struct {
	ArticleID    int       `json:"article_id" db:"article_id"`
	Title        string    `json:"title" db:"title"`
	Topic        string    `json:"topic" db:"topic"`
	Author       string    `json:"author" db:"author"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	Votes        int       `json:"votes" db:"votes"`
	CommentCount int       `json:"comment_count" db:"comment_count"`
}

// ArticleNDJSON represents an article record from a seed file
type ArticleNDJSON struct {
	ArticleID int       `json:"article_id" validate:"min=1"`
	Title     string    `json:"title" validate:"required"`
	Topic     string    `json:"topic" validate:"required"`
	Author    string    `json:"author" validate:"required"`
	Body      string    `json:"body" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	Votes     int       `json:"votes"`
}
