package handlers

import (
	"net/http"

	"banarts/internal/services"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the shared notification feed.
type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
	}
}

// RegisterRoutes mounts the notification feed. The feed is shared by every
// client, so reads and read-marking are public.
func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup, guard *RouteGuard) {
	notifications := r.Group("/notifications")
	{
		notifications.GET("", h.ListNotifications)
		notifications.GET("/unread-count", h.GetUnreadCount)
		notifications.PUT("/mark-all-read", h.MarkAllAsRead)
		notifications.PUT("/:id/read", h.MarkAsRead)
	}

	r.DELETE("/clear-notifications", append(guard.AdminChain(), h.ClearNotifications)...)
}

// ListNotifications returns the newest visible notifications.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	notifications, err := h.notificationService.ListNotifications(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// GetUnreadCount answers {"count": n}.
func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	count, err := h.notificationService.GetUnreadCount(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkAsRead succeeds even when the row is missing or already read.
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	if err := h.notificationService.MarkAsRead(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	if _, err := h.notificationService.MarkAllAsRead(h.GetDB(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ClearNotifications is admin only and reports how many rows were removed.
func (h *NotificationHandler) ClearNotifications(c *gin.Context) {
	deleted, err := h.notificationService.ClearNotifications(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notifications cleared", "deleted": deleted})
}
