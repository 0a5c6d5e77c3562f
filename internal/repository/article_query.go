package repository

import (
	"fmt"
	"strings"

	"github.com/news-board-api/internal/validation"
)

// sortColumns is the closed set of ORDER BY expressions the listing may use.
// Request values never reach the SQL text; only these constants do.
var sortColumns = map[validation.SortKey]string{
	validation.SortArticleID:    "articles.article_id",
	validation.SortAuthor:       "articles.author",
	validation.SortTitle:        "articles.title",
	validation.SortTopic:        "articles.topic",
	validation.SortCreatedAt:    "articles.created_at",
	validation.SortVotes:        "articles.votes",
	validation.SortCommentCount: "comment_count",
}

var sortDirections = map[validation.SortOrder]string{
	validation.OrderAsc:  "ASC",
	validation.OrderDesc: "DESC",
}

const articleListSelect = `SELECT articles.article_id, articles.title, articles.topic, articles.author,
	articles.created_at, articles.votes,
	COUNT(comments.comment_id)::INT AS comment_count
FROM articles
LEFT JOIN comments ON comments.article_id = articles.article_id`

// buildArticleListQuery returns the listing SQL and its arguments. Rows with
// equal sort keys come back in whatever order the database produces.
func buildArticleListQuery(q validation.ArticleQuery) (string, []interface{}, error) {
	column, ok := sortColumns[q.SortBy]
	if !ok {
		return "", nil, fmt.Errorf("unsupported article sort column %q", q.SortBy)
	}
	direction, ok := sortDirections[q.Order]
	if !ok {
		return "", nil, fmt.Errorf("unsupported article sort order %q", q.Order)
	}

	var sb strings.Builder
	var args []interface{}

	sb.WriteString(articleListSelect)
	if q.HasTopic {
		args = append(args, q.Topic)
		sb.WriteString("\nWHERE articles.topic = $1")
	}
	sb.WriteString("\nGROUP BY articles.article_id")
	sb.WriteString("\nORDER BY ")
	sb.WriteString(column)
	sb.WriteString(" ")
	sb.WriteString(direction)

	return sb.String(), args, nil
}
