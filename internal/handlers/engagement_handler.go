package handlers

import (
	"net/http"

	"banarts/internal/services"
	"banarts/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// EngagementHandler serves follows and saves.
type EngagementHandler struct {
	*BaseHandler
	engagementService services.EngagementService
}

func NewEngagementHandler(base *BaseHandler, engagementService services.EngagementService) *EngagementHandler {
	return &EngagementHandler{
		BaseHandler:       base,
		engagementService: engagementService,
	}
}

func (h *EngagementHandler) RegisterRoutes(r *gin.RouterGroup, guard *RouteGuard) {
	r.POST("/follow-artist", guard.Auth, h.ToggleFollow)
	r.GET("/followed-artists/:user_id", h.ListFollowedArtists)
	r.POST("/save-artwork", guard.Auth, h.ToggleSave)
	r.GET("/saved-artworks/:user_id", h.ListSavedArtworks)
}

func (h *EngagementHandler) ToggleFollow(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.FollowArtistRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	resp, err := h.engagementService.ToggleFollow(h.GetDB(c), userID, req.ArtistID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EngagementHandler) ListFollowedArtists(c *gin.Context) {
	userID, ok := h.ParseParamUint(c, "user_id")
	if !ok {
		return
	}
	artists, err := h.engagementService.ListFollowedArtists(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, artists)
}

func (h *EngagementHandler) ToggleSave(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.SaveArtworkRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	resp, err := h.engagementService.ToggleSave(h.GetDB(c), userID, req.ArtworkID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EngagementHandler) ListSavedArtworks(c *gin.Context) {
	userID, ok := h.ParseParamUint(c, "user_id")
	if !ok {
		return
	}
	artworks, err := h.engagementService.ListSavedArtworks(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, artworks)
}
