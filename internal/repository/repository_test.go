package repository

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/news-board-api/internal/database"
	"github.com/news-board-api/internal/models"
	"github.com/news-board-api/internal/validation"
)

func newMockDB(t *testing.T) (*database.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		sqlDB.Close()
	})
	return database.Wrap(sqlDB, zerolog.Nop()), mock
}

func TestBuildArticleListQuery(t *testing.T) {
	tests := []struct {
		name      string
		query     validation.ArticleQuery
		wantOrder string
		wantWhere bool
		wantArgs  []interface{}
	}{
		{
			name:      "defaults",
			query:     validation.DefaultArticleQuery(),
			wantOrder: "ORDER BY articles.created_at DESC",
		},
		{
			name:      "votes ascending",
			query:     validation.ArticleQuery{SortBy: validation.SortVotes, Order: validation.OrderAsc},
			wantOrder: "ORDER BY articles.votes ASC",
		},
		{
			name:      "comment count",
			query:     validation.ArticleQuery{SortBy: validation.SortCommentCount, Order: validation.OrderDesc},
			wantOrder: "ORDER BY comment_count DESC",
		},
		{
			name: "topic filter",
			query: validation.ArticleQuery{
				SortBy: validation.SortTitle, Order: validation.OrderAsc,
				Topic: "cats", HasTopic: true,
			},
			wantOrder: "ORDER BY articles.title ASC",
			wantWhere: true,
			wantArgs:  []interface{}{"cats"},
		},
		{
			name: "topic value never reaches the SQL text",
			query: validation.ArticleQuery{
				SortBy: validation.SortAuthor, Order: validation.OrderDesc,
				Topic: "x'; DROP TABLE articles; --", HasTopic: true,
			},
			wantOrder: "ORDER BY articles.author DESC",
			wantWhere: true,
			wantArgs:  []interface{}{"x'; DROP TABLE articles; --"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := buildArticleListQuery(tt.query)
			require.NoError(t, err)

			assert.True(t, strings.HasSuffix(sql, tt.wantOrder), "got %q", sql)
			assert.Contains(t, sql, "GROUP BY articles.article_id")
			assert.Equal(t, tt.wantWhere, strings.Contains(sql, "WHERE articles.topic = $1"))
			assert.Equal(t, tt.wantArgs, args)
			if tt.query.HasTopic {
				assert.NotContains(t, sql, tt.query.Topic)
			}
		})
	}
}

func TestBuildArticleListQuery_EverySortKeyHasAColumn(t *testing.T) {
	keys := []validation.SortKey{
		validation.SortArticleID, validation.SortAuthor, validation.SortTitle, validation.SortTopic,
		validation.SortCreatedAt, validation.SortVotes, validation.SortCommentCount,
	}
	for _, key := range keys {
		_, _, err := buildArticleListQuery(validation.ArticleQuery{SortBy: key, Order: validation.OrderAsc})
		assert.NoError(t, err, "sort key %s", key)
	}
}

func TestBuildArticleListQuery_RejectsUnknownTokens(t *testing.T) {
	_, _, err := buildArticleListQuery(validation.ArticleQuery{SortBy: "body", Order: validation.OrderAsc})
	assert.Error(t, err)

	_, _, err = buildArticleListQuery(validation.ArticleQuery{SortBy: validation.SortVotes, Order: "sideways"})
	assert.Error(t, err)
}

func TestArticleRepo_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewArticleRepo(db)
	created := time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE articles.topic = $1 GROUP BY articles.article_id ORDER BY articles.votes ASC")).
		WithArgs("mitch").
		WillReturnRows(sqlmock.NewRows([]string{"article_id", "title", "topic", "author", "created_at", "votes", "comment_count"}).
			AddRow(1, "Living in the shadow of a great man", "mitch", "butter_bridge", created, 100, 11).
			AddRow(3, "Eight pug gifs that remind me of mitch", "mitch", "icellusedkars", created, 0, 2))

	articles, err := repo.List(context.Background(), validation.ArticleQuery{
		SortBy: validation.SortVotes, Order: validation.OrderAsc, Topic: "mitch", HasTopic: true,
	})
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, 1, articles[0].ArticleID)
	assert.Equal(t, 11, articles[0].CommentCount)
	assert.Equal(t, created, articles[0].CreatedAt)
}

func TestArticleRepo_List_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewArticleRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM articles")).
		WithArgs("paper").
		WillReturnRows(sqlmock.NewRows([]string{"article_id", "title", "topic", "author", "created_at", "votes", "comment_count"}))

	q := validation.DefaultArticleQuery()
	q.Topic, q.HasTopic = "paper", true
	articles, err := repo.List(context.Background(), q)
	require.NoError(t, err)
	assert.NotNil(t, articles)
	assert.Empty(t, articles)
}

func TestArticleRepo_Exists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewArticleRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM articles WHERE article_id = $1)")).
		WithArgs(12345).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.Exists(context.Background(), 12345)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestArticleRepo_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewArticleRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE articles.article_id = $1")).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"article_id", "title", "topic", "author", "body", "created_at", "votes", "comment_count"}))

	article, err := repo.GetByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, article)
}

func TestArticleRepo_IncrementVotes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewArticleRepo(db)
	created := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE articles SET votes = votes + $1 WHERE article_id = $2")).
		WithArgs(-10, 1).
		WillReturnRows(sqlmock.NewRows([]string{"article_id", "title", "topic", "author", "body", "created_at", "votes", "comment_count"}).
			AddRow(1, "Living in the shadow of a great man", "mitch", "butter_bridge", "I find this existence challenging", created, 90, 11))

	article, err := repo.IncrementVotes(context.Background(), 1, -10)
	require.NoError(t, err)
	require.NotNil(t, article)
	assert.Equal(t, 90, article.Votes)
	assert.Equal(t, 11, article.CommentCount)
}

func TestArticleRepo_IncrementVotes_OutOfRange(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewArticleRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE articles")).
		WithArgs(2147483647, 1).
		WillReturnError(&pq.Error{Code: "22003", Message: "integer out of range"})

	_, err := repo.IncrementVotes(context.Background(), 1, 2147483647)
	var pqErr *pq.Error
	require.True(t, errors.As(err, &pqErr))
	assert.Equal(t, pq.ErrorCode("22003"), pqErr.Code)
}

func TestArticleRepo_BatchInsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewArticleRepo(db)

	mock.ExpectBegin()
	prep := mock.ExpectPrepare(regexp.QuoteMeta(`COPY "articles" ("article_id", "title", "topic", "author", "body", "created_at", "votes") FROM STDIN`))
	prep.ExpectExec().
		WithArgs(1, "Running a Node App", "coding", "jessjelly", "This is part two", sqlmock.AnyArg(), 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("SELECT setval(pg_get_serial_sequence('articles', 'article_id')")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	inserted, err := repo.BatchInsert(context.Background(), []*models.Article{
		{ArticleID: 1, Title: "Running a Node App", Topic: "coding", Author: "jessjelly", Body: "This is part two"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)
}

func TestCommentRepo_Create_ForeignKeyViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO comments (article_id, author, body)")).
		WithArgs(1, "ghost", "boo").
		WillReturnError(&pq.Error{Code: "23503"})

	_, err := repo.Create(context.Background(), 1, "ghost", "boo")
	var pqErr *pq.Error
	require.True(t, errors.As(err, &pqErr))
	assert.Equal(t, pq.ErrorCode("23503"), pqErr.Code)
}

func TestCommentRepo_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepo(db)
	created := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO comments (article_id, author, body)")).
		WithArgs(2, "lurker", "first!").
		WillReturnRows(sqlmock.NewRows([]string{"comment_id", "body", "article_id", "author", "votes", "created_at"}).
			AddRow(19, "first!", 2, "lurker", 0, created))

	comment, err := repo.Create(context.Background(), 2, "lurker", "first!")
	require.NoError(t, err)
	assert.Equal(t, 19, comment.CommentID)
	assert.Equal(t, 0, comment.Votes)
	assert.Equal(t, created, comment.CreatedAt)
}

func TestCommentRepo_ListByArticle(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepo(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("FROM comments WHERE article_id = $1 ORDER BY created_at DESC")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"comment_id", "body", "article_id", "author", "votes", "created_at"}).
			AddRow(5, "newer", 1, "icellusedkars", 0, now).
			AddRow(2, "older", 1, "butter_bridge", 14, now.Add(-time.Hour)))

	comments, err := repo.ListByArticle(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, 5, comments[0].CommentID)
}

func TestCommentRepo_IncrementVotes_NoRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE comments SET votes = votes + $1 WHERE comment_id = $2")).
		WithArgs(1, 404).
		WillReturnRows(sqlmock.NewRows([]string{"comment_id", "body", "article_id", "author", "votes", "created_at"}))

	comment, err := repo.IncrementVotes(context.Background(), 404, 1)
	require.NoError(t, err)
	assert.Nil(t, comment)
}

func TestCommentRepo_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepo(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM comments WHERE comment_id = $1")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM comments WHERE comment_id = $1")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestTopicRepo_ListAndExists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTopicRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT slug, description FROM topics")).
		WillReturnRows(sqlmock.NewRows([]string{"slug", "description"}).
			AddRow("mitch", "The man, the Mitch, the legend").
			AddRow("paper", nil))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM topics WHERE slug = $1)")).
		WithArgs("paper").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	topics, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Topic{
		{Slug: "mitch", Description: "The man, the Mitch, the legend"},
		{Slug: "paper"},
	}, topics)

	exists, err := repo.Exists(context.Background(), "paper")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserRepo_GetByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
		WithArgs("lurker").
		WillReturnRows(sqlmock.NewRows([]string{"username", "name", "avatar_url"}).
			AddRow("lurker", "do_nothing", nil))
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"username", "name", "avatar_url"}))

	user, err := repo.GetByUsername(context.Background(), "lurker")
	require.NoError(t, err)
	assert.Equal(t, &models.User{Username: "lurker", Name: "do_nothing"}, user)

	user, err = repo.GetByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
}
