package service

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/news-board-api/internal/mocks"
	"github.com/news-board-api/internal/models"
	"github.com/news-board-api/internal/validation"
)

// newLargeStore returns a store with one user, one topic and n articles
func newLargeStore(n int) *mocks.MockStore {
	store := mocks.NewMockStore()
	store.Topics["mitch"] = &models.Topic{Slug: "mitch", Description: "The man, the Mitch, the legend"}
	store.Users["butter_bridge"] = &models.User{Username: "butter_bridge", Name: "jonny"}

	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= n; i++ {
		store.Articles[i] = &models.Article{
			ArticleID: i,
			Title:     "Article " + strconv.Itoa(i),
			Topic:     "mitch",
			Author:    "butter_bridge",
			Body:      "body",
			CreatedAt: start.Add(time.Duration(i) * time.Minute),
			Votes:     i % 17,
		}
	}
	store.NextArticleID = n + 1
	return store
}

// BenchmarkListArticles benchmarks a sorted, topic-filtered listing
func BenchmarkListArticles(b *testing.B) {
	repos := mocks.NewMockRepositories(newLargeStore(1000))
	services := NewServices(repos.Repositories(), zerolog.Nop())
	q := validation.ArticleQuery{
		SortBy:   validation.SortVotes,
		Order:    validation.OrderDesc,
		Topic:    "mitch",
		HasTopic: true,
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		services.Article.ListArticles(context.Background(), q)
	}

	b.ReportMetric(float64(1000*b.N)/b.Elapsed().Seconds(), "rows/sec")
}

// BenchmarkBatchInsert benchmarks comment batch inserts
func BenchmarkBatchInsert(b *testing.B) {
	repos := mocks.NewMockRepositories(newLargeStore(10))

	comments := make([]*models.Comment, 1000)
	for i := range comments {
		comments[i] = &models.Comment{
			CommentID: i + 1,
			Body:      "Ambidextrous marsupial",
			ArticleID: i%10 + 1,
			Author:    "butter_bridge",
			CreatedAt: time.Now(),
		}
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		repos.Comment.BatchInsert(context.Background(), comments)
	}

	b.ReportMetric(float64(1000*b.N)/b.Elapsed().Seconds(), "rows/sec")
}

// BenchmarkDecodeRecord benchmarks the per-line seed pipeline
func BenchmarkDecodeRecord(b *testing.B) {
	line := []byte(`{"comment_id":1,"body":"Oh, I've got compassion running out of my nose, pal!","article_id":9,"author":"butter_bridge","votes":16,"created_at":"2020-04-06T12:17:00Z"}`)

	b.ResetTimer()
	b.ReportAllocs()
	b.SetBytes(int64(len(line)))

	for i := 0; i < b.N; i++ {
		var c models.CommentNDJSON
		if err := decodeRecord(line, &c); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkReadNDJSON benchmarks line scanning over a 1000 line file
func BenchmarkReadNDJSON(b *testing.B) {
	var buf bytes.Buffer
	for i := 0; i < 1000; i++ {
		fmt.Fprintf(&buf, "{\"slug\":\"topic-%d\",\"description\":\"generated\"}\n", i)
	}
	path := filepath.Join(b.TempDir(), TopicsFile)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()
	b.SetBytes(int64(buf.Len()))

	for i := 0; i < b.N; i++ {
		err := readNDJSON(context.Background(), path, func(raw []byte) error {
			var t models.Topic
			return decodeRecord(raw, &t)
		})
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkParseArticleQuery benchmarks query whitelisting
func BenchmarkParseArticleQuery(b *testing.B) {
	values := url.Values{
		"sort_by": []string{"comment_count"},
		"order":   []string{"asc"},
		"topic":   []string{"mitch"},
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		validation.ParseArticleQuery(values)
	}
}
