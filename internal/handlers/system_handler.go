package handlers

import (
	"context"
	"net/http"
	"time"

	"banarts/internal/logger"
	"banarts/internal/metrics"

	"github.com/gin-gonic/gin"
)

const healthTimeout = 2 * time.Second

// SystemHandler serves liveness, health and metrics.
type SystemHandler struct {
	*BaseHandler
}

func NewSystemHandler(base *BaseHandler) *SystemHandler {
	return &SystemHandler{BaseHandler: base}
}

func (h *SystemHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/test", h.Test)
	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
}

func (h *SystemHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Server is working!"})
}

// Health pings the database.
func (h *SystemHandler) Health(c *gin.Context) {
	sqlDB, err := h.GetDB(c).DB()
	if err == nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "health check failed", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
