package mocks

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/news-board-api/internal/models"
	"github.com/news-board-api/internal/repository"
	"github.com/news-board-api/internal/validation"
)

// MockStore is the in-memory dataset shared by the mock repositories
type MockStore struct {
	Topics        map[string]*models.Topic
	Users         map[string]*models.User
	Articles      map[int]*models.Article
	Comments      map[int]*models.Comment
	NextArticleID int
	NextCommentID int
}

// NewMockStore returns an empty store
func NewMockStore() *MockStore {
	return &MockStore{
		Topics:        make(map[string]*models.Topic),
		Users:         make(map[string]*models.User),
		Articles:      make(map[int]*models.Article),
		Comments:      make(map[int]*models.Comment),
		NextArticleID: 1,
		NextCommentID: 1,
	}
}

func (s *MockStore) commentCount(articleID int) int {
	count := 0
	for _, c := range s.Comments {
		if c.ArticleID == articleID {
			count++
		}
	}
	return count
}

func (s *MockStore) articleWithCount(a *models.Article) *models.Article {
	out := *a
	out.CommentCount = s.commentCount(a.ArticleID)
	return &out
}

// MockRepositories bundles the mock repositories over one store
type MockRepositories struct {
	Store   *MockStore
	Topic   *MockTopicRepository
	User    *MockUserRepository
	Article *MockArticleRepository
	Comment *MockCommentRepository
}

// NewMockRepositories creates mock repositories sharing store
func NewMockRepositories(store *MockStore) *MockRepositories {
	return &MockRepositories{
		Store:   store,
		Topic:   &MockTopicRepository{Store: store},
		User:    &MockUserRepository{Store: store},
		Article: &MockArticleRepository{Store: store},
		Comment: &MockCommentRepository{Store: store},
	}
}

// Repositories exposes the mocks through the repository interfaces
func (m *MockRepositories) Repositories() *repository.Repositories {
	return &repository.Repositories{
		Topic:   m.Topic,
		User:    m.User,
		Article: m.Article,
		Comment: m.Comment,
	}
}

// MockTopicRepository is a mock implementation of TopicRepository
type MockTopicRepository struct {
	Store *MockStore
	// Err, when set, is returned by every method
	Err         error
	ExistsCalls int
}

var _ repository.TopicRepository = (*MockTopicRepository)(nil)

func (m *MockTopicRepository) List(ctx context.Context) ([]models.Topic, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	topics := make([]models.Topic, 0, len(m.Store.Topics))
	for _, t := range m.Store.Topics {
		topics = append(topics, *t)
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].Slug < topics[j].Slug })
	return topics, nil
}

func (m *MockTopicRepository) Exists(ctx context.Context, slug string) (bool, error) {
	m.ExistsCalls++
	if m.Err != nil {
		return false, m.Err
	}
	_, exists := m.Store.Topics[slug]
	return exists, nil
}

func (m *MockTopicRepository) Count(ctx context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.Store.Topics), nil
}

func (m *MockTopicRepository) BatchInsert(ctx context.Context, topics []*models.Topic) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	for _, t := range topics {
		m.Store.Topics[t.Slug] = t
	}
	return len(topics), nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Store *MockStore
	Err   error
}

var _ repository.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	users := make([]models.User, 0, len(m.Store.Users))
	for _, u := range m.Store.Users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	u, ok := m.Store.Users[username]
	if !ok {
		return nil, nil
	}
	out := *u
	return &out, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, username string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	_, exists := m.Store.Users[username]
	return exists, nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.Store.Users), nil
}

func (m *MockUserRepository) BatchInsert(ctx context.Context, users []*models.User) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	for _, u := range users {
		m.Store.Users[u.Username] = u
	}
	return len(users), nil
}

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	Store     *MockStore
	Err       error
	ListCalls int
	LastQuery validation.ArticleQuery
	// VanishOnUpdate simulates the row being deleted between the existence
	// check and the update
	VanishOnUpdate bool
}

var _ repository.ArticleRepository = (*MockArticleRepository)(nil)

func (m *MockArticleRepository) List(ctx context.Context, q validation.ArticleQuery) ([]models.ArticleSummary, error) {
	m.ListCalls++
	m.LastQuery = q
	if m.Err != nil {
		return nil, m.Err
	}

	articles := make([]models.ArticleSummary, 0)
	for _, a := range m.Store.Articles {
		if q.HasTopic && a.Topic != q.Topic {
			continue
		}
		articles = append(articles, models.ArticleSummary{
			ArticleID:    a.ArticleID,
			Title:        a.Title,
			Topic:        a.Topic,
			Author:       a.Author,
			CreatedAt:    a.CreatedAt,
			Votes:        a.Votes,
			CommentCount: m.Store.commentCount(a.ArticleID),
		})
	}

	// Ties fall back to article_id so the fake stays deterministic
	sort.SliceStable(articles, func(i, j int) bool {
		cmp := compareSummaries(articles[i], articles[j], q.SortBy)
		if cmp == 0 {
			return articles[i].ArticleID < articles[j].ArticleID
		}
		if q.Order == validation.OrderAsc {
			return cmp < 0
		}
		return cmp > 0
	})
	return articles, nil
}

func compareSummaries(a, b models.ArticleSummary, key validation.SortKey) int {
	switch key {
	case validation.SortArticleID:
		return a.ArticleID - b.ArticleID
	case validation.SortAuthor:
		return strings.Compare(a.Author, b.Author)
	case validation.SortTitle:
		return strings.Compare(a.Title, b.Title)
	case validation.SortTopic:
		return strings.Compare(a.Topic, b.Topic)
	case validation.SortVotes:
		return a.Votes - b.Votes
	case validation.SortCommentCount:
		return a.CommentCount - b.CommentCount
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int) (*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	a, ok := m.Store.Articles[id]
	if !ok {
		return nil, nil
	}
	return m.Store.articleWithCount(a), nil
}

func (m *MockArticleRepository) Exists(ctx context.Context, id int) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	_, exists := m.Store.Articles[id]
	return exists, nil
}

func (m *MockArticleRepository) IncrementVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.VanishOnUpdate {
		delete(m.Store.Articles, id)
	}
	a, ok := m.Store.Articles[id]
	if !ok {
		return nil, nil
	}
	a.Votes += delta
	return m.Store.articleWithCount(a), nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.Store.Articles), nil
}

func (m *MockArticleRepository) BatchInsert(ctx context.Context, articles []*models.Article) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	for _, a := range articles {
		if _, ok := m.Store.Topics[a.Topic]; !ok {
			return 0, &pq.Error{Code: "23503"}
		}
		if _, ok := m.Store.Users[a.Author]; !ok {
			return 0, &pq.Error{Code: "23503"}
		}
		m.Store.Articles[a.ArticleID] = a
		if a.ArticleID >= m.Store.NextArticleID {
			m.Store.NextArticleID = a.ArticleID + 1
		}
	}
	return len(articles), nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	Store          *MockStore
	Err            error
	VanishOnUpdate bool
}

var _ repository.CommentRepository = (*MockCommentRepository)(nil)

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	comments := make([]models.Comment, 0)
	for _, c := range m.Store.Comments {
		if c.ArticleID == articleID {
			comments = append(comments, *c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

// Create behaves like the real table: unknown article or author is a
// foreign key violation
func (m *MockCommentRepository) Create(ctx context.Context, articleID int, author, body string) (*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if _, ok := m.Store.Articles[articleID]; !ok {
		return nil, &pq.Error{Code: "23503", Constraint: "comments_article_id_fkey"}
	}
	if _, ok := m.Store.Users[author]; !ok {
		return nil, &pq.Error{Code: "23503", Constraint: "comments_author_fkey"}
	}

	c := &models.Comment{
		CommentID: m.Store.NextCommentID,
		Body:      body,
		ArticleID: articleID,
		Author:    author,
		CreatedAt: time.Now().UTC(),
	}
	m.Store.Comments[c.CommentID] = c
	m.Store.NextCommentID++

	out := *c
	return &out, nil
}

func (m *MockCommentRepository) Exists(ctx context.Context, id int) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	_, exists := m.Store.Comments[id]
	return exists, nil
}

func (m *MockCommentRepository) IncrementVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.VanishOnUpdate {
		delete(m.Store.Comments, id)
	}
	c, ok := m.Store.Comments[id]
	if !ok {
		return nil, nil
	}
	c.Votes += delta
	out := *c
	return &out, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if m.VanishOnUpdate {
		delete(m.Store.Comments, id)
	}
	if _, ok := m.Store.Comments[id]; !ok {
		return false, nil
	}
	delete(m.Store.Comments, id)
	return true, nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.Store.Comments), nil
}

func (m *MockCommentRepository) BatchInsert(ctx context.Context, comments []*models.Comment) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	for _, c := range comments {
		if _, ok := m.Store.Articles[c.ArticleID]; !ok {
			return 0, &pq.Error{Code: "23503"}
		}
		m.Store.Comments[c.CommentID] = c
		if c.CommentID >= m.Store.NextCommentID {
			m.Store.NextCommentID = c.CommentID + 1
		}
	}
	return len(comments), nil
}
