package handlers

import (
	"net/http"

	"banarts/internal/auth"
	"banarts/internal/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	*BaseHandler
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(base *BaseHandler, analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		BaseHandler:      base,
		analyticsService: analyticsService,
	}
}

func (h *AnalyticsHandler) RegisterRoutes(r *gin.RouterGroup, guard *RouteGuard) {
	r.GET("/dashboard", append(guard.Chain(auth.PermDashboardView), h.GetDashboard)...)
}

func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	counts, err := h.analyticsService.GetDashboard(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}
