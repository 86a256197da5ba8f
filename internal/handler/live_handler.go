package handler

import (
	"log"
	"net/http"

	"ideate/internal/live"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type LiveHandler struct {
	boards   BoardStore
	hub      *live.Hub
	upgrader websocket.Upgrader
}

func NewLiveHandler(boards BoardStore, hub *live.Hub) *LiveHandler {
	return &LiveHandler{
		boards: boards,
		hub:    hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Subscribe upgrades the request to a websocket that streams the board's events.
func (h *LiveHandler) Subscribe(c *gin.Context) {
	board, ok := loadBoard(c, h.boards)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Websocket upgrade failed for board %s: %v", board.Code, err)
		return
	}

	client := live.NewClient(h.hub, board.Code, conn)
	h.hub.Subscribe(client)

	go client.WritePump()
	client.ReadPump()
}
