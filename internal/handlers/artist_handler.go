package handlers

import (
	"net/http"

	"banarts/internal/auth"
	"banarts/internal/services"
	"banarts/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ArtistHandler struct {
	*BaseHandler
	artistService services.ArtistService
}

func NewArtistHandler(base *BaseHandler, artistService services.ArtistService) *ArtistHandler {
	return &ArtistHandler{
		BaseHandler:   base,
		artistService: artistService,
	}
}

func (h *ArtistHandler) RegisterRoutes(r *gin.RouterGroup, guard *RouteGuard) {
	artists := r.Group("/artists")
	{
		artists.GET("", h.ListArtists)
		artists.GET("/featured", h.ListFeatured)
		artists.GET("/other", h.ListOther)
		artists.GET("/:id", h.GetArtist)
		artists.POST("", guard.Auth, h.CreateArtist)
		artists.PUT("/:id", guard.Auth, h.UpdateArtist)
		artists.DELETE("/:id", append(guard.Chain(auth.PermContentDelete), h.DeleteArtist)...)
	}

	categories := r.Group("/artist-categories")
	{
		categories.GET("", h.ListCategories)
		categories.GET("/:id", h.GetCategory)
		categories.POST("", guard.Auth, h.CreateCategory)
		categories.PUT("/:id", guard.Auth, h.UpdateCategory)
		categories.DELETE("/:id", append(guard.Chain(auth.PermContentDelete), h.DeleteCategory)...)
	}
}

func (h *ArtistHandler) ListArtists(c *gin.Context) {
	h.listArtists(c, nil)
}

func (h *ArtistHandler) ListFeatured(c *gin.Context) {
	featured := true
	h.listArtists(c, &featured)
}

// ListOther lists artists that are not featured.
func (h *ArtistHandler) ListOther(c *gin.Context) {
	featured := false
	h.listArtists(c, &featured)
}

func (h *ArtistHandler) listArtists(c *gin.Context, featured *bool) {
	artists, err := h.artistService.ListArtists(h.GetDB(c), featured)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, artists)
}

func (h *ArtistHandler) GetArtist(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	artist, err := h.artistService.GetArtist(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, artist)
}

func (h *ArtistHandler) CreateArtist(c *gin.Context) {
	var req dto.ArtistRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	artist, err := h.artistService.CreateArtist(h.GetDB(c), &req, FormFile(c, "photo"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, artist)
}

func (h *ArtistHandler) UpdateArtist(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	var req dto.ArtistRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	artist, err := h.artistService.UpdateArtist(h.GetDB(c), id, &req, FormFile(c, "photo"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, artist)
}

func (h *ArtistHandler) DeleteArtist(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	if err := h.artistService.DeleteArtist(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Artist deleted"})
}

func (h *ArtistHandler) ListCategories(c *gin.Context) {
	categories, err := h.artistService.ListCategories(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *ArtistHandler) GetCategory(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	category, err := h.artistService.GetCategory(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *ArtistHandler) CreateCategory(c *gin.Context) {
	var req dto.ArtistCategoryRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	category, err := h.artistService.CreateCategory(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *ArtistHandler) UpdateCategory(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	var req dto.ArtistCategoryRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	category, err := h.artistService.UpdateCategory(h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *ArtistHandler) DeleteCategory(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	if err := h.artistService.DeleteCategory(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
