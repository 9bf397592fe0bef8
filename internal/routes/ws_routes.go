package routes

import (
	"banarts/ws"

	"github.com/gin-gonic/gin"
)

// SetupWebSocketRoutes exposes the notification channel. Clients connect
// anonymously because every notification goes to everyone.
func SetupWebSocketRoutes(r *gin.Engine, wsHandler *ws.WebSocketHandler) {
	r.GET("/ws", wsHandler.ServeWS)
	r.GET("/socket", wsHandler.ServeWS)
}
