package service

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/news-board-api/internal/models"
	"github.com/news-board-api/internal/repository"
	"github.com/news-board-api/internal/validation"
)

// Seed files, in foreign key order
const (
	TopicsFile   = "topics.ndjson"
	UsersFile    = "users.ndjson"
	ArticlesFile = "articles.ndjson"
	CommentsFile = "comments.ndjson"
)

// SeedReport summarises a completed seed run
type SeedReport struct {
	Topics     int   `json:"topics"`
	Users      int   `json:"users"`
	Articles   int   `json:"articles"`
	Comments   int   `json:"comments"`
	DurationMs int64 `json:"duration_ms"`
}

// LineError reports a seed record that could not be loaded
type LineError struct {
	File    string
	Line    int
	Field   string
	Message string
}

func (e *LineError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s:%d: %s: %s", e.File, e.Line, e.Field, e.Message)
	}
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
}

type seedService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newSeedService(repos *repository.Repositories, log zerolog.Logger) *seedService {
	return &seedService{
		repos: repos,
		log:   log.With().Str("service", "seed").Logger(),
	}
}

// Seed loads the four NDJSON files from dir. Each file is fully parsed and
// validated before its table is written, so a bad line aborts the run with
// nothing of that table inserted.
func (s *seedService) Seed(ctx context.Context, dir string) (*SeedReport, error) {
	startTime := time.Now()
	report := &SeedReport{}

	s.log.Info().Str("dir", dir).Msg("Starting seed")

	var topics []*models.Topic
	err := readNDJSON(ctx, filepath.Join(dir, TopicsFile), func(raw []byte) error {
		var t models.Topic
		if err := decodeRecord(raw, &t); err != nil {
			return err
		}
		topics = append(topics, &t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if report.Topics, err = s.repos.Topic.BatchInsert(ctx, topics); err != nil {
		return nil, fmt.Errorf("insert topics: %w", err)
	}

	var users []*models.User
	err = readNDJSON(ctx, filepath.Join(dir, UsersFile), func(raw []byte) error {
		var u models.User
		if err := decodeRecord(raw, &u); err != nil {
			return err
		}
		users = append(users, &u)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if report.Users, err = s.repos.User.BatchInsert(ctx, users); err != nil {
		return nil, fmt.Errorf("insert users: %w", err)
	}

	var articles []*models.Article
	err = readNDJSON(ctx, filepath.Join(dir, ArticlesFile), func(raw []byte) error {
		var a models.ArticleNDJSON
		if err := decodeRecord(raw, &a); err != nil {
			return err
		}
		articles = append(articles, convertNDJSONToArticle(&a))
		return nil
	})
	if err != nil {
		return nil, err
	}
	if report.Articles, err = s.repos.Article.BatchInsert(ctx, articles); err != nil {
		return nil, fmt.Errorf("insert articles: %w", err)
	}

	var comments []*models.Comment
	err = readNDJSON(ctx, filepath.Join(dir, CommentsFile), func(raw []byte) error {
		var c models.CommentNDJSON
		if err := decodeRecord(raw, &c); err != nil {
			return err
		}
		comments = append(comments, convertNDJSONToComment(&c))
		return nil
	})
	if err != nil {
		return nil, err
	}
	if report.Comments, err = s.repos.Comment.BatchInsert(ctx, comments); err != nil {
		return nil, fmt.Errorf("insert comments: %w", err)
	}

	report.DurationMs = time.Since(startTime).Milliseconds()

	s.log.Info().
		Int("topics", report.Topics).
		Int("users", report.Users).
		Int("articles", report.Articles).
		Int("comments", report.Comments).
		Int64("duration_ms", report.DurationMs).
		Msg("Seed completed")

	return report, nil
}

// readNDJSON calls fn for every non-blank line of path. Errors returned by fn
// are reported against the file and line number.
func readNDJSON(ctx context.Context, path string, fn func(raw []byte) error) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	// Increase buffer size for long lines
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	name := filepath.Base(path)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		if lineNum%1000 == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}

		if err := fn(line); err != nil {
			if lineErr, ok := err.(*LineError); ok {
				lineErr.File = name
				lineErr.Line = lineNum
				return lineErr
			}
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	return nil
}

// decodeRecord unmarshals one NDJSON line into dst and validates it. Position
// fields of the returned LineError are filled in by readNDJSON.
func decodeRecord(raw []byte, dst interface{}) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		return &LineError{Field: "json", Message: fmt.Sprintf("invalid JSON: %v", err)}
	}
	if errs := validation.ValidateRecord(dst); len(errs) > 0 {
		return &LineError{Field: errs[0].Field, Message: errs[0].Message}
	}
	return nil
}

func convertNDJSONToArticle(ndjson *models.ArticleNDJSON) *models.Article {
	return &models.Article{
		ArticleID: ndjson.ArticleID,
		Title:     ndjson.Title,
		Topic:     ndjson.Topic,
		Author:    ndjson.Author,
		Body:      ndjson.Body,
		CreatedAt: ndjson.CreatedAt,
		Votes:     ndjson.Votes,
	}
}

func convertNDJSONToComment(ndjson *models.CommentNDJSON) *models.Comment {
	return &models.Comment{
		CommentID: ndjson.CommentID,
		Body:      ndjson.Body,
		ArticleID: ndjson.ArticleID,
		Author:    ndjson.Author,
		Votes:     ndjson.Votes,
		CreatedAt: ndjson.CreatedAt,
	}
}
