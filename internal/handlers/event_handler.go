package handlers

import (
	"net/http"

	"banarts/internal/auth"
	"banarts/internal/services"
	"banarts/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	*BaseHandler
	eventService services.EventService
}

func NewEventHandler(base *BaseHandler, eventService services.EventService) *EventHandler {
	return &EventHandler{
		BaseHandler:  base,
		eventService: eventService,
	}
}

func (h *EventHandler) RegisterRoutes(r *gin.RouterGroup, guard *RouteGuard) {
	events := r.Group("/events")
	{
		events.GET("", h.ListEvents)
		events.GET("/featured", h.ListFeatured)
		events.GET("/:id", h.GetEvent)
		events.POST("", guard.Auth, h.CreateEvent)
		events.PUT("/:id", guard.Auth, h.UpdateEvent)
		events.DELETE("/:id", append(guard.Chain(auth.PermContentDelete), h.DeleteEvent)...)
		events.POST("/:id/set-featured", guard.Auth, h.SetFeatured)
		events.POST("/:id/unset-featured", guard.Auth, h.UnsetFeatured)
	}
}

func (h *EventHandler) ListEvents(c *gin.Context) {
	h.listEvents(c, nil)
}

func (h *EventHandler) ListFeatured(c *gin.Context) {
	featured := true
	h.listEvents(c, &featured)
}

func (h *EventHandler) listEvents(c *gin.Context, featured *bool) {
	events, err := h.eventService.ListEvents(h.GetDB(c), featured)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	event, err := h.eventService.GetEvent(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req dto.EventRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	event, err := h.eventService.CreateEvent(h.GetDB(c), &req, eventFiles(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	var req dto.EventRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	event, err := h.eventService.UpdateEvent(h.GetDB(c), id, &req, eventFiles(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	if err := h.eventService.DeleteEvent(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}

func (h *EventHandler) SetFeatured(c *gin.Context) {
	h.setFeatured(c, true)
}

func (h *EventHandler) UnsetFeatured(c *gin.Context) {
	h.setFeatured(c, false)
}

func (h *EventHandler) setFeatured(c *gin.Context, featured bool) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	if err := h.eventService.SetFeatured(h.GetDB(c), id, featured); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "is_featured": featured})
}

func eventFiles(c *gin.Context) services.EventFiles {
	return services.EventFiles{
		Image:    FormFile(c, "image"),
		Artworks: FormFiles(c, "artwork_files"),
	}
}
