package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mirofs/mirofs/internal/infrastructure/monitoring"
	"github.com/mirofs/mirofs/internal/logging"
	"github.com/mirofs/mirofs/internal/service"
	"github.com/mirofs/mirofs/internal/shared/types"
	"github.com/mirofs/mirofs/internal/vfs"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	store    *vfs.Store
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewHandlers creates a new handler set
func NewHandlers(registry *service.Registry, store *vfs.Store, metrics *monitoring.Metrics, logger *logging.Logger) *Handlers {
	return &Handlers{
		registry: registry,
		store:    store,
		metrics:  metrics,
		logger:   logger,
	}
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "mirofs",
		"version": "0.1.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	stats := h.store.Stats()
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
		"store": gin.H{
			"nodes":       stats.Nodes,
			"files":       stats.Files,
			"directories": stats.Directories,
			"bytes":       stats.Bytes,
		},
	})
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")

	var category *types.Category
	if categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	services := h.registry.List(category)
	stats := h.registry.Stats()

	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"stats":    stats,
	})
}

// DiscoverServices discovers relevant services for an intent
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req types.DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 5
	}

	services := h.registry.Discover(req.Intent, limit)

	c.JSON(http.StatusOK, gin.H{
		"query":    req.Intent,
		"services": services,
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var appCtx *types.Context
	if req.UserID != nil {
		appCtx = &types.Context{UserID: req.UserID}
	}

	serviceID, method := splitToolID(req.ToolID)
	timer := monitoring.NewTimer(h.metrics, serviceID, method)

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, appCtx)
	if err != nil {
		timer.Stop("error")
		h.metrics.RecordServiceError(serviceID, method, "dispatch")
		h.logger.Warn("service execution failed",
			zap.String("tool_id", req.ToolID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if result.Success {
		timer.Stop("ok")
	} else {
		timer.Stop("failure")
		h.metrics.RecordServiceError(serviceID, method, "operation")
	}

	c.JSON(http.StatusOK, result)
}

// splitToolID separates a tool ID into service and method labels.
func splitToolID(toolID string) (string, string) {
	parts := strings.SplitN(toolID, ".", 2)
	if len(parts) < 2 {
		return toolID, "unknown"
	}
	return parts[0], parts[1]
}
