package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/news-board-api/internal/service"
)

// TopicHandler handles topic endpoints
type TopicHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewTopicHandler creates a new TopicHandler
func NewTopicHandler(services *service.Services, log zerolog.Logger) *TopicHandler {
	return &TopicHandler{
		services: services,
		log:      log.With().Str("handler", "topic").Logger(),
	}
}

// ListTopics handles GET /api/topics
func (h *TopicHandler) ListTopics(c *gin.Context) {
	topics, err := h.services.Topic.ListTopics(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}
