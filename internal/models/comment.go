package models

import (
	"time"
)

// Comment represents a comment on an article
type Comment struct {
	CommentID int       `json:"comment_id" db:"comment_id"`
	Body      string    `json:"body" db:"body"`
	ArticleID int       `json:"article_id" db:"article_id"`
	Author    string    `json:"author" db:"author"`
	Votes     int       `json:"votes" db:"votes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewComment is the payload of POST /api/articles/:article_id/comments
type NewComment struct {
	Username string `json:"username" binding:"required"`
	Body     string `json:"body" binding:"required"`
}

// CommentNDJSON represents a comment record from a seed file
type CommentNDJSON struct {
	CommentID int       `json:"comment_id" validate:"min=1"`
	Body      string    `json:"body" validate:"required"`
	ArticleID int       `json:"article_id" validate:"min=1"`
	Author    string    `json:"author" validate:"required"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}
