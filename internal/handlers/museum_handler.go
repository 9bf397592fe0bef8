package handlers

import (
	"net/http"

	"banarts/internal/auth"
	"banarts/internal/services"
	"banarts/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MuseumHandler struct {
	*BaseHandler
	museumService services.MuseumService
}

func NewMuseumHandler(base *BaseHandler, museumService services.MuseumService) *MuseumHandler {
	return &MuseumHandler{
		BaseHandler:   base,
		museumService: museumService,
	}
}

func (h *MuseumHandler) RegisterRoutes(r *gin.RouterGroup, guard *RouteGuard) {
	museums := r.Group("/museums")
	{
		museums.GET("", h.ListMuseums)
		museums.GET("/featured", h.ListFeatured)
		museums.GET("/:id", h.GetMuseum)
		museums.POST("", guard.Auth, h.CreateMuseum)
		museums.PUT("/:id", guard.Auth, h.UpdateMuseum)
		museums.DELETE("/:id", append(guard.Chain(auth.PermContentDelete), h.DeleteMuseum)...)
	}

	artifacts := r.Group("/artifacts")
	{
		artifacts.GET("", h.ListArtifacts)
		artifacts.GET("/:id", h.GetArtifact)
		artifacts.POST("", guard.Auth, h.CreateArtifact)
		artifacts.PUT("/:id", guard.Auth, h.UpdateArtifact)
		artifacts.DELETE("/:id", append(guard.Chain(auth.PermContentDelete), h.DeleteArtifact)...)
	}
}

func (h *MuseumHandler) ListMuseums(c *gin.Context) {
	h.listMuseums(c, nil)
}

func (h *MuseumHandler) ListFeatured(c *gin.Context) {
	featured := true
	h.listMuseums(c, &featured)
}

func (h *MuseumHandler) listMuseums(c *gin.Context, featured *bool) {
	museums, err := h.museumService.ListMuseums(h.GetDB(c), featured)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, museums)
}

func (h *MuseumHandler) GetMuseum(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	museum, err := h.museumService.GetMuseum(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, museum)
}

func (h *MuseumHandler) CreateMuseum(c *gin.Context) {
	var req dto.MuseumRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	museum, err := h.museumService.CreateMuseum(h.GetDB(c), &req, FormFile(c, "image"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, museum)
}

func (h *MuseumHandler) UpdateMuseum(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	var req dto.MuseumRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	museum, err := h.museumService.UpdateMuseum(h.GetDB(c), id, &req, FormFile(c, "image"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, museum)
}

func (h *MuseumHandler) DeleteMuseum(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	if err := h.museumService.DeleteMuseum(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Museum deleted"})
}

// ListArtifacts optionally narrows to ?museum_id=.
func (h *MuseumHandler) ListArtifacts(c *gin.Context) {
	artifacts, err := h.museumService.ListArtifacts(h.GetDB(c), ParseQueryUint(c, "museum_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, artifacts)
}

func (h *MuseumHandler) GetArtifact(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	artifact, err := h.museumService.GetArtifact(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, artifact)
}

func (h *MuseumHandler) CreateArtifact(c *gin.Context) {
	var req dto.ArtifactRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	artifact, err := h.museumService.CreateArtifact(h.GetDB(c), &req, FormFile(c, "image"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, artifact)
}

func (h *MuseumHandler) UpdateArtifact(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	var req dto.ArtifactRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	artifact, err := h.museumService.UpdateArtifact(h.GetDB(c), id, &req, FormFile(c, "image"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, artifact)
}

func (h *MuseumHandler) DeleteArtifact(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}
	if err := h.museumService.DeleteArtifact(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Artifact deleted"})
}
