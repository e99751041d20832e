package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/1970jjh/minusproject/internal/constants"
	"github.com/1970jjh/minusproject/internal/logging"
	"github.com/1970jjh/minusproject/internal/service"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The game trusts its players; rooms are joined by code, not origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// StreamRoom upgrades the connection to a websocket and pushes a state
// snapshot after every accepted mutation in the room. Clients that stop
// reading are disconnected.
func (h *RoomHandler) StreamRoom(c *gin.Context) {
	code := normalizeJoinCode(c.Param("roomCode"))
	if !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRoomCode})
		return
	}
	r, err := service.GetRoom(h.repo, code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRoomNotFound})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.Error("websocket upgrade failed", err, logging.Fields{constants.LogFieldRoomCode: code})
		return
	}

	h.hub.Prime(r)
	snaps, cancel := h.hub.Subscribe(code)

	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(2 * pingPeriod))
		return nil
	})

	// Reader goroutine: the client never sends game data over the socket,
	// but reading is required to process control frames and detect closes.
	go func() {
		defer cancel()
		conn.SetReadDeadline(time.Now().Add(2 * pingPeriod))
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	go func() {
		defer conn.Close()
		defer cancel()
		ping := time.NewTicker(pingPeriod)
		defer ping.Stop()
		for {
			select {
			case snap, ok := <-snaps:
				if !ok {
					conn.SetWriteDeadline(time.Now().Add(writeWait))
					conn.WriteMessage(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
					return
				}
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(snap); err != nil {
					return
				}
			case <-ping.C:
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()
}
