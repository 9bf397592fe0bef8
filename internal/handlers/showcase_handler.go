package handlers

import (
	"net/http"

	"banarts/internal/auth"
	"banarts/internal/services"
	"banarts/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// ShowcaseHandler serves the home and browse page cards.
type ShowcaseHandler struct {
	*BaseHandler
	showcaseService services.ShowcaseService
}

func NewShowcaseHandler(base *BaseHandler, showcaseService services.ShowcaseService) *ShowcaseHandler {
	return &ShowcaseHandler{
		BaseHandler:     base,
		showcaseService: showcaseService,
	}
}

func (h *ShowcaseHandler) RegisterRoutes(r *gin.RouterGroup, guard *RouteGuard) {
	thumbnails := r.Group("/thumbnails")
	{
		thumbnails.GET("", h.ListThumbnails)
		thumbnails.GET("/:id", h.GetThumbnail)
		thumbnails.POST("", guard.Auth, h.CreateThumbnails)
		thumbnails.PUT("/:id", guard.Auth, h.UpdateThumbnail)
		thumbnails.DELETE("/:id", append(guard.Chain(auth.PermContentDelete), h.DeleteThumbnail)...)
	}

	galleries := r.Group("/browse-galleries")
	{
		galleries.GET("", h.ListBrowseGalleries)
		galleries.POST("", guard.Auth, h.CreateBrowseGallery)
		galleries.DELETE("/:id", append(guard.Chain(auth.PermContentDelete), h.DeleteBrowseGallery)...)
	}

	museums := r.Group("/browse-museums")
	{
		museums.GET("", h.ListBrowseMuseums)
		museums.POST("", guard.Auth, h.CreateBrowseMuseum)
		museums.DELETE("/:id", append(guard.Chain(auth.PermContentDelete), h.DeleteBrowseMuseum)...)
	}

	highlights := r.Group("/curated-highlights")
	{
		highlights.GET("", h.ListHighlights)
		highlights.POST("", guard.Auth, h.CreateHighlight)
		highlights.PUT("/:id", guard.Auth, h.UpdateHighlight)
		highlights.DELETE("/:id", append(guard.Chain(auth.PermContentDelete), h.DeleteHighlight)...)
	}

	featured := r.Group("/featured-artworks")
	{
		featured.GET("", h.ListFeaturedArtworks)
		featured.POST("", guard.Auth, h.CreateFeaturedArtwork)
		featured.DELETE("/:id", append(guard.Chain(auth.PermContentDelete), h.DeleteFeaturedArtwork)...)
	}
}

// ==============================
// THUMBNAILS
// ==============================

func (h *ShowcaseHandler) ListThumbnails(c *gin.Context) {
	thumbs, err := h.showcaseService.ListThumbnails(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, thumbs)
}

func (h *ShowcaseHandler) GetThumbnail(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	thumb, err := h.showcaseService.GetThumbnail(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, thumb)
}

// CreateThumbnails accepts up to ten "images" files plus an "items" JSON
// array describing them.
func (h *ShowcaseHandler) CreateThumbnails(c *gin.Context) {
	var req dto.ThumbnailBatchRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	thumbs, err := h.showcaseService.CreateThumbnails(h.GetDB(c), &req, FormFiles(c, "images"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Thumbnails uploaded", "thumbnails": thumbs})
}

func (h *ShowcaseHandler) UpdateThumbnail(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	var req dto.ThumbnailRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	thumb, err := h.showcaseService.UpdateThumbnail(h.GetDB(c), id, &req, FormFile(c, "image"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, thumb)
}

func (h *ShowcaseHandler) DeleteThumbnail(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	if err := h.showcaseService.DeleteThumbnail(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Thumbnail deleted"})
}

// ==============================
// BROWSE CARDS
// ==============================

func (h *ShowcaseHandler) ListBrowseGalleries(c *gin.Context) {
	entries, err := h.showcaseService.ListBrowseGalleries(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *ShowcaseHandler) CreateBrowseGallery(c *gin.Context) {
	var req dto.BrowseEntryRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	entry, err := h.showcaseService.CreateBrowseGallery(h.GetDB(c), &req, FormFile(c, "image"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *ShowcaseHandler) DeleteBrowseGallery(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	if err := h.showcaseService.DeleteBrowseGallery(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Browse gallery deleted"})
}

func (h *ShowcaseHandler) ListBrowseMuseums(c *gin.Context) {
	entries, err := h.showcaseService.ListBrowseMuseums(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *ShowcaseHandler) CreateBrowseMuseum(c *gin.Context) {
	var req dto.BrowseEntryRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	entry, err := h.showcaseService.CreateBrowseMuseum(h.GetDB(c), &req, FormFile(c, "image"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *ShowcaseHandler) DeleteBrowseMuseum(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	if err := h.showcaseService.DeleteBrowseMuseum(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Browse museum deleted"})
}

// ==============================
// CURATED HIGHLIGHTS
// ==============================

func (h *ShowcaseHandler) ListHighlights(c *gin.Context) {
	highlights, err := h.showcaseService.ListHighlights(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, highlights)
}

func (h *ShowcaseHandler) CreateHighlight(c *gin.Context) {
	var req dto.HighlightRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	highlight, err := h.showcaseService.CreateHighlight(h.GetDB(c), &req, FormFile(c, "image"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, highlight)
}

func (h *ShowcaseHandler) UpdateHighlight(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	var req dto.HighlightRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	highlight, err := h.showcaseService.UpdateHighlight(h.GetDB(c), id, &req, FormFile(c, "image"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, highlight)
}

func (h *ShowcaseHandler) DeleteHighlight(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	if err := h.showcaseService.DeleteHighlight(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Curated highlight deleted"})
}

// ==============================
// FEATURED ARTWORK TILES
// ==============================

func (h *ShowcaseHandler) ListFeaturedArtworks(c *gin.Context) {
	tiles, err := h.showcaseService.ListFeaturedArtworks(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tiles)
}

func (h *ShowcaseHandler) CreateFeaturedArtwork(c *gin.Context) {
	var req dto.FeaturedArtworkRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	tile, err := h.showcaseService.CreateFeaturedArtwork(h.GetDB(c), &req, FormFile(c, "image"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tile)
}

func (h *ShowcaseHandler) DeleteFeaturedArtwork(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	if err := h.showcaseService.DeleteFeaturedArtwork(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Featured artwork deleted"})
}
