package handlers

import (
	"net/http"

	"banarts/internal/services"

	"github.com/gin-gonic/gin"
)

// UploadHandler stores the caller's profile picture.
type UploadHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUploadHandler(base *BaseHandler, userService services.UserService) *UploadHandler {
	return &UploadHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup, guard *RouteGuard) {
	r.POST("/upload-profile-picture", guard.Auth, h.UploadProfilePicture)
}

// UploadProfilePicture expects the image under "profile_picture" or "image".
func (h *UploadHandler) UploadProfilePicture(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	file := FormFile(c, "profile_picture")
	if file == nil {
		file = FormFile(c, "image")
	}

	path, err := h.userService.UploadProfilePicture(h.GetDB(c), userID, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "Profile picture uploaded successfully",
		"profile_picture": path,
	})
}
