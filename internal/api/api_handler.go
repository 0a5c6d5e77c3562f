package api

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed endpoints.json
var endpointsJSON []byte

// APIHandler serves the capability listing
type APIHandler struct{}

// NewAPIHandler creates a new APIHandler
func NewAPIHandler() *APIHandler {
	return &APIHandler{}
}

// GetEndpoints handles GET /api
func (h *APIHandler) GetEndpoints(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", endpointsJSON)
}
