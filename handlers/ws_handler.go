package handlers

import (
	"log"
	"net/http"

	"github.com/JWDT/bug-tracker/events"
	"github.com/JWDT/bug-tracker/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WSHandler struct {
	hub *events.Hub
}

func NewWSHandler(hub *events.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// Events upgrades the connection and streams ticket mutation events. The
// token rides the query string because browsers cannot set headers on
// websocket upgrades.
func (h *WSHandler) Events(c *gin.Context) {
	tokenStr := c.Query("token")
	claims, err := middleware.ParseToken(tokenStr)
	if err != nil || claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("Failed to upgrade websocket:", err)
		return
	}

	h.hub.Add(ws)
	defer func() {
		h.hub.Remove(ws)
		ws.Close()
	}()

	// Read loop only detects disconnects; clients do not send messages.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return
		}
	}
}
