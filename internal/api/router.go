package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/news-board-api/internal/config"
	"github.com/news-board-api/internal/service"
	"github.com/news-board-api/pkg/logger"
)

const healthTimeout = 2 * time.Second

// HealthChecker reports whether the backing store is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, health HealthChecker, metrics *Metrics, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	router := gin.New()
	router.RedirectTrailingSlash = false

	// Middleware
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(metrics.middleware())
	router.Use(recoveryMiddleware(log))
	router.Use(corsMiddleware(cfg.Server.CORSAllowedOrigin))
	router.Use(errorMiddleware(log))

	// Handlers
	apiHandler := NewAPIHandler()
	topicHandler := NewTopicHandler(services, log)
	articleHandler := NewArticleHandler(services, log)
	commentHandler := NewCommentHandler(services, log)
	userHandler := NewUserHandler(services, log)

	// Operational endpoints
	router.GET("/health", healthCheck(health))
	router.GET("/metrics", metrics.handler())

	api := router.Group("/api")
	{
		api.GET("", apiHandler.GetEndpoints)

		api.GET("/topics", topicHandler.ListTopics)

		articles := api.Group("/articles")
		{
			articles.GET("", articleHandler.ListArticles)
			articles.GET("/:article_id", articleHandler.GetArticle)
			articles.PATCH("/:article_id", articleHandler.VoteArticle)
			articles.GET("/:article_id/comments", articleHandler.ListComments)
			articles.POST("/:article_id/comments", articleHandler.AddComment)
		}

		comments := api.Group("/comments")
		{
			comments.PATCH("/:comment_id", commentHandler.VoteComment)
			comments.DELETE("/:comment_id", commentHandler.DeleteComment)
		}

		users := api.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:username", userHandler.GetUser)
		}
	}

	registerImplicitRoutes(router)
	router.NoRoute(routeNotFound)

	return router
}

// registerImplicitRoutes answers HEAD on every GET route and a CORS preflight
// on every routed path. OPTIONS on an unknown path still reaches NoRoute.
func registerImplicitRoutes(router *gin.Engine) {
	preflighted := make(map[string]bool)
	for _, route := range router.Routes() {
		if route.Method == http.MethodGet {
			router.HEAD(route.Path, route.HandlerFunc)
		}
		if !preflighted[route.Path] {
			preflighted[route.Path] = true
			router.OPTIONS(route.Path, preflight)
		}
	}
}

func preflight(c *gin.Context) {
	c.AbortWithStatus(http.StatusNoContent)
}

// healthCheck returns the health status
func healthCheck(health HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		if err := health.HealthCheck(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"timestamp": time.Now().Format(time.RFC3339),
				"service":   logger.ServiceName,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   logger.ServiceName,
		})
	}
}
