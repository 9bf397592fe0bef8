package handlers

import (
	"net/http"

	"banarts/internal/auth"
	"banarts/internal/services"
	"banarts/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ArtworkHandler struct {
	*BaseHandler
	artworkService services.ArtworkService
}

func NewArtworkHandler(base *BaseHandler, artworkService services.ArtworkService) *ArtworkHandler {
	return &ArtworkHandler{
		BaseHandler:    base,
		artworkService: artworkService,
	}
}

func (h *ArtworkHandler) RegisterRoutes(r *gin.RouterGroup, guard *RouteGuard) {
	artworks := r.Group("/artworks")
	{
		artworks.GET("", h.ListArtworks)
		artworks.GET("/featured", h.ListFeatured)
		artworks.GET("/:id", h.GetArtwork)
		artworks.POST("", guard.Auth, h.CreateArtwork)
		artworks.PUT("/:id", guard.Auth, h.UpdateArtwork)
		artworks.DELETE("/:id", append(guard.Chain(auth.PermContentDelete), h.DeleteArtwork)...)
	}

	r.GET("/artworkcategories", h.ListCategories)
}

// ListArtworks accepts _limit, artist_id and category filters.
func (h *ArtworkHandler) ListArtworks(c *gin.Context) {
	var query dto.ArtworkQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}
	artworks, err := h.artworkService.ListArtworks(h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, artworks)
}

func (h *ArtworkHandler) ListFeatured(c *gin.Context) {
	artworks, err := h.artworkService.ListFeaturedArtworks(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, artworks)
}

func (h *ArtworkHandler) GetArtwork(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	artwork, err := h.artworkService.GetArtwork(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, artwork)
}

func (h *ArtworkHandler) CreateArtwork(c *gin.Context) {
	var req dto.ArtworkRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	artwork, err := h.artworkService.CreateArtwork(h.GetDB(c), &req, FormFile(c, "image"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, artwork)
}

func (h *ArtworkHandler) UpdateArtwork(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	var req dto.ArtworkRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	artwork, err := h.artworkService.UpdateArtwork(h.GetDB(c), id, &req, FormFile(c, "image"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, artwork)
}

func (h *ArtworkHandler) DeleteArtwork(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	if err := h.artworkService.DeleteArtwork(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Artwork deleted"})
}

func (h *ArtworkHandler) ListCategories(c *gin.Context) {
	categories, err := h.artworkService.ListCategories(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}
