package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize: 64 * 1024,
	CheckOrigin:    func(r *http.Request) bool { return true },
}

// CameraSocket accepts JPEG frames from a remote camera over a websocket.
// Binary messages are frames; a "ping" text message gets a "pong" back so
// the pushing side can check liveness.
func (a *API) CameraSocket(c *gin.Context) {
	if a.Camera == nil {
		c.JSON(http.StatusNotFound, NoRemoteCameraResponse)
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Print("upgrade:", err)
		return
	}
	defer conn.Close()

	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			log.Println("camera socket read err:", err)
			return
		}
		switch {
		case mt == websocket.TextMessage && string(message) == "ping":
			conn.WriteMessage(websocket.TextMessage, []byte("pong"))
		case mt == websocket.BinaryMessage:
			a.Camera.Push(message)
		}
	}
}
