package validation

import (
	"net/url"

	"github.com/news-board-api/internal/apperr"
)

// SortKey is a validated article listing sort column
type SortKey string

const (
	SortArticleID    SortKey = "article_id"
	SortAuthor       SortKey = "author"
	SortTitle        SortKey = "title"
	SortTopic        SortKey = "topic"
	SortCreatedAt    SortKey = "created_at"
	SortVotes        SortKey = "votes"
	SortCommentCount SortKey = "comment_count"
)

// SortOrder is a validated listing direction
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Accepted query-string values. "date" is an alias for created_at.
var (
	sortKeys = map[string]SortKey{
		"article_id":    SortArticleID,
		"author":        SortAuthor,
		"title":         SortTitle,
		"topic":         SortTopic,
		"created_at":    SortCreatedAt,
		"date":          SortCreatedAt,
		"votes":         SortVotes,
		"comment_count": SortCommentCount,
	}

	sortOrders = map[string]SortOrder{
		"asc":  OrderAsc,
		"desc": OrderDesc,
	}

	articleQueryKeys = map[string]bool{
		"sort_by": true,
		"order":   true,
		"topic":   true,
	}
)

// ArticleQuery is the resolved form of GET /api/articles query parameters
type ArticleQuery struct {
	SortBy SortKey
	Order  SortOrder
	// Topic is empty when no filter was requested
	Topic    string
	HasTopic bool
}

// DefaultArticleQuery returns the listing used when no parameters are given
func DefaultArticleQuery() ArticleQuery {
	return ArticleQuery{SortBy: SortCreatedAt, Order: OrderDesc}
}

// ParseArticleQuery validates the listing query string against the whitelist.
// Unknown keys, repeated keys and unknown sort_by/order values are bad
// requests. Whether the topic exists is not checked here.
func ParseArticleQuery(values url.Values) (ArticleQuery, error) {
	for key := range values {
		if !articleQueryKeys[key] || len(values[key]) != 1 {
			return ArticleQuery{}, apperr.ErrBadRequest
		}
	}

	q := DefaultArticleQuery()

	if values.Has("sort_by") {
		key, ok := sortKeys[values.Get("sort_by")]
		if !ok {
			return ArticleQuery{}, apperr.ErrBadRequest
		}
		q.SortBy = key
	}

	if values.Has("order") {
		order, ok := sortOrders[values.Get("order")]
		if !ok {
			return ArticleQuery{}, apperr.ErrBadRequest
		}
		q.Order = order
	}

	if values.Has("topic") {
		q.Topic = values.Get("topic")
		q.HasTopic = true
	}

	return q, nil
}
