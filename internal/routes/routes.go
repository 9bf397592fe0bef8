package routes

import (
	"banarts/internal/handlers"
	"banarts/internal/logger"
	"banarts/ws"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every HTTP and websocket route at the root.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	wsHandler *ws.WebSocketHandler,
	guard *handlers.RouteGuard,
) {
	api := ginRouter.Group("")
	{
		appHandlers.SystemHandler.RegisterRoutes(api)
		appHandlers.AuthHandler.RegisterRoutes(api, guard)
		appHandlers.UserHandler.RegisterRoutes(api, guard)
		appHandlers.UploadHandler.RegisterRoutes(api, guard)
		appHandlers.NotificationHandler.RegisterRoutes(api, guard)
		appHandlers.ArtistHandler.RegisterRoutes(api, guard)
		appHandlers.ArtworkHandler.RegisterRoutes(api, guard)
		appHandlers.GalleryHandler.RegisterRoutes(api, guard)
		appHandlers.MuseumHandler.RegisterRoutes(api, guard)
		appHandlers.EventHandler.RegisterRoutes(api, guard)
		appHandlers.MediaHandler.RegisterRoutes(api, guard)
		appHandlers.ShowcaseHandler.RegisterRoutes(api, guard)
		appHandlers.EngagementHandler.RegisterRoutes(api, guard)
		appHandlers.SearchHandler.RegisterRoutes(api)
		appHandlers.AnalyticsHandler.RegisterRoutes(api, guard)
	}

	SetupWebSocketRoutes(ginRouter, wsHandler)
	logger.Info("routes registered", "routes", len(ginRouter.Routes()))
}
