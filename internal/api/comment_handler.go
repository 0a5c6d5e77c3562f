package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/news-board-api/internal/service"
	"github.com/news-board-api/internal/validation"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// VoteComment handles PATCH /api/comments/:comment_id
func (h *CommentHandler) VoteComment(c *gin.Context) {
	id, err := validation.ParseID(c.Param("comment_id"))
	if err != nil {
		c.Error(err)
		return
	}

	delta, err := bindVoteDelta(c)
	if err != nil {
		c.Error(err)
		return
	}

	comment, err := h.services.Comment.VoteComment(c.Request.Context(), id, delta)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// DeleteComment handles DELETE /api/comments/:comment_id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, err := validation.ParseID(c.Param("comment_id"))
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.services.Comment.DeleteComment(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
