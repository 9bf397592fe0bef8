package handlers

import (
	"net/http"

	"banarts/internal/auth"
	"banarts/internal/services"
	"banarts/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type GalleryHandler struct {
	*BaseHandler
	galleryService services.GalleryService
}

func NewGalleryHandler(base *BaseHandler, galleryService services.GalleryService) *GalleryHandler {
	return &GalleryHandler{
		BaseHandler:    base,
		galleryService: galleryService,
	}
}

func (h *GalleryHandler) RegisterRoutes(r *gin.RouterGroup, guard *RouteGuard) {
	galleries := r.Group("/galleries")
	{
		galleries.GET("", h.ListGalleries)
		galleries.GET("/featured", h.ListFeatured)
		galleries.GET("/:id", h.GetGallery)
		galleries.POST("", guard.Auth, h.CreateGallery)
		galleries.PUT("/:id", guard.Auth, h.UpdateGallery)
		galleries.DELETE("/:id", append(guard.Chain(auth.PermContentDelete), h.DeleteGallery)...)
		galleries.POST("/:id/set-featured", guard.Auth, h.SetFeatured)
		galleries.POST("/reset-featured", guard.Auth, h.ResetFeatured)
	}

	featured := r.Group("/gallery-featured-artworks")
	{
		featured.GET("", h.ListFeaturedArtworks)
		featured.GET("/:id", h.GetFeaturedArtwork)
		featured.POST("", guard.Auth, h.CreateFeaturedArtwork)
		featured.PUT("/:id", guard.Auth, h.UpdateFeaturedArtwork)
		featured.DELETE("/:id", append(guard.Chain(auth.PermContentDelete), h.DeleteFeaturedArtwork)...)
	}
}

func (h *GalleryHandler) ListGalleries(c *gin.Context) {
	h.listGalleries(c, nil)
}

func (h *GalleryHandler) ListFeatured(c *gin.Context) {
	featured := true
	h.listGalleries(c, &featured)
}

func (h *GalleryHandler) listGalleries(c *gin.Context, featured *bool) {
	limit := ParseQueryInt(c, "_limit", 0)
	galleries, err := h.galleryService.ListGalleries(h.GetDB(c), featured, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, galleries)
}

func (h *GalleryHandler) GetGallery(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	gallery, err := h.galleryService.GetGallery(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gallery)
}

func (h *GalleryHandler) CreateGallery(c *gin.Context) {
	var req dto.GalleryRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	gallery, err := h.galleryService.CreateGallery(h.GetDB(c), &req, FormFile(c, "image"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gallery)
}

func (h *GalleryHandler) UpdateGallery(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	var req dto.GalleryRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	gallery, err := h.galleryService.UpdateGallery(h.GetDB(c), id, &req, FormFile(c, "image"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gallery)
}

func (h *GalleryHandler) DeleteGallery(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	if err := h.galleryService.DeleteGallery(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Gallery deleted"})
}

// SetFeatured makes one gallery the featured one.
func (h *GalleryHandler) SetFeatured(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	if err := h.galleryService.SetFeatured(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Gallery set as featured"})
}

func (h *GalleryHandler) ResetFeatured(c *gin.Context) {
	updated, err := h.galleryService.ResetFeatured(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "updated": updated})
}

func (h *GalleryHandler) ListFeaturedArtworks(c *gin.Context) {
	artworks, err := h.galleryService.ListFeaturedArtworks(h.GetDB(c), ParseQueryUint(c, "gallery_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, artworks)
}

func (h *GalleryHandler) GetFeaturedArtwork(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	artwork, err := h.galleryService.GetFeaturedArtwork(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, artwork)
}

func (h *GalleryHandler) CreateFeaturedArtwork(c *gin.Context) {
	var req dto.GalleryFeaturedArtworkRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	artwork, err := h.galleryService.CreateFeaturedArtwork(h.GetDB(c), &req, FormFile(c, "image"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, artwork)
}

func (h *GalleryHandler) UpdateFeaturedArtwork(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	var req dto.GalleryFeaturedArtworkRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	artwork, err := h.galleryService.UpdateFeaturedArtwork(h.GetDB(c), id, &req, FormFile(c, "image"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, artwork)
}

func (h *GalleryHandler) DeleteFeaturedArtwork(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	if err := h.galleryService.DeleteFeaturedArtwork(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Featured artwork deleted"})
}
