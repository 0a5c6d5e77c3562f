package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/news-board-api/internal/models"
	"github.com/news-board-api/internal/service"
	"github.com/news-board-api/internal/validation"
)

// ArticleHandler handles article endpoints, including an article's comments
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// ListArticles handles GET /api/articles
// Query: sort_by, order, topic; any other key is rejected
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	q, err := validation.ParseArticleQuery(c.Request.URL.Query())
	if err != nil {
		c.Error(err)
		return
	}

	h.log.Debug().
		Str("sort_by", string(q.SortBy)).
		Str("order", string(q.Order)).
		Str("topic", q.Topic).
		Msg("Listing articles")

	articles, err := h.services.Article.ListArticles(c.Request.Context(), q)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GetArticle handles GET /api/articles/:article_id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := validation.ParseID(c.Param("article_id"))
	if err != nil {
		c.Error(err)
		return
	}

	article, err := h.services.Article.GetArticle(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// VoteArticle handles PATCH /api/articles/:article_id
func (h *ArticleHandler) VoteArticle(c *gin.Context) {
	id, err := validation.ParseID(c.Param("article_id"))
	if err != nil {
		c.Error(err)
		return
	}

	delta, err := bindVoteDelta(c)
	if err != nil {
		c.Error(err)
		return
	}

	article, err := h.services.Article.VoteArticle(c.Request.Context(), id, delta)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// ListComments handles GET /api/articles/:article_id/comments
func (h *ArticleHandler) ListComments(c *gin.Context) {
	id, err := validation.ParseID(c.Param("article_id"))
	if err != nil {
		c.Error(err)
		return
	}

	comments, err := h.services.Article.ListComments(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// AddComment handles POST /api/articles/:article_id/comments
func (h *ArticleHandler) AddComment(c *gin.Context) {
	id, err := validation.ParseID(c.Param("article_id"))
	if err != nil {
		c.Error(err)
		return
	}

	var req models.NewComment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(validation.BindError(err))
		return
	}

	comment, err := h.services.Article.AddComment(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// bindVoteDelta reads the inc_votes body shared by the vote endpoints
func bindVoteDelta(c *gin.Context) (int, error) {
	var req models.VoteUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		return 0, validation.BindError(err)
	}
	return validation.ParseVoteDelta(req.IncVotes)
}
