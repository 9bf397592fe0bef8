package handlers

import (
	"net/http"

	"banarts/internal/auth"
	"banarts/internal/services"
	"banarts/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// MediaHandler serves videos and collections.
type MediaHandler struct {
	*BaseHandler
	mediaService services.MediaService
}

func NewMediaHandler(base *BaseHandler, mediaService services.MediaService) *MediaHandler {
	return &MediaHandler{
		BaseHandler:  base,
		mediaService: mediaService,
	}
}

func (h *MediaHandler) RegisterRoutes(r *gin.RouterGroup, guard *RouteGuard) {
	videos := r.Group("/videos")
	{
		videos.GET("", h.ListVideos)
		videos.GET("/:id", h.GetVideo)
		videos.POST("", guard.Auth, h.CreateVideo)
		videos.PUT("/:id", guard.Auth, h.UpdateVideo)
		videos.DELETE("/:id", append(guard.Chain(auth.PermContentDelete), h.DeleteVideo)...)
	}

	collections := r.Group("/collections")
	{
		collections.GET("", h.ListCollections)
		collections.GET("/:id", h.GetCollection)
		collections.POST("", guard.Auth, h.CreateCollection)
		collections.PUT("/:id", guard.Auth, h.UpdateCollection)
		collections.DELETE("/:id", append(guard.Chain(auth.PermContentDelete), h.DeleteCollection)...)
	}
}

func (h *MediaHandler) ListVideos(c *gin.Context) {
	videos, err := h.mediaService.ListVideos(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, videos)
}

func (h *MediaHandler) GetVideo(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	video, err := h.mediaService.GetVideo(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, video)
}

func (h *MediaHandler) CreateVideo(c *gin.Context) {
	var req dto.VideoRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	video, err := h.mediaService.CreateVideo(h.GetDB(c), &req, FormFile(c, "thumbnail"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, video)
}

func (h *MediaHandler) UpdateVideo(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	var req dto.VideoRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	video, err := h.mediaService.UpdateVideo(h.GetDB(c), id, &req, FormFile(c, "thumbnail"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, video)
}

func (h *MediaHandler) DeleteVideo(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	if err := h.mediaService.DeleteVideo(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video deleted"})
}

func (h *MediaHandler) ListCollections(c *gin.Context) {
	collections, err := h.mediaService.ListCollections(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, collections)
}

func (h *MediaHandler) GetCollection(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	collection, err := h.mediaService.GetCollection(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, collection)
}

func (h *MediaHandler) CreateCollection(c *gin.Context) {
	var req dto.CollectionRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	collection, err := h.mediaService.CreateCollection(h.GetDB(c), &req, collectionImages(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, collection)
}

func (h *MediaHandler) UpdateCollection(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	var req dto.CollectionRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	collection, err := h.mediaService.UpdateCollection(h.GetDB(c), id, &req, collectionImages(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, collection)
}

func (h *MediaHandler) DeleteCollection(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	if err := h.mediaService.DeleteCollection(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Collection deleted"})
}

func collectionImages(c *gin.Context) services.CollectionImages {
	return services.CollectionImages{
		Image:          FormFile(c, "image"),
		Painting:       FormFile(c, "painting"),
		CollectorImage: FormFile(c, "collector_image"),
	}
}
