// server/internal/api/handlers/websocket_handler.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"jiffy-backoffice-api-server/internal/auth"
	"jiffy-backoffice-api-server/internal/socket"
)

// defaultPongWait is how long a connection may stay silent, pongs included, before it is dropped.
const defaultPongWait = 60 * time.Second

type WebSocketHandler struct {
	Hub           *socket.Hub
	Tokens        *auth.TokenManager
	AllowedOrigin string
	Log           *zap.Logger
	// PongWait overrides defaultPongWait. Pings go out at 9/10 of it.
	PongWait time.Duration
}

func (h *WebSocketHandler) pongWait() time.Duration {
	if h.PongWait > 0 {
		return h.PongWait
	}
	return defaultPongWait
}

func (h *WebSocketHandler) upgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || h.AllowedOrigin == "" || origin == h.AllowedOrigin
		},
	}
}

// ServeWs upgrades an authenticated dashboard connection and keeps it
// registered until the client goes away.
func (h *WebSocketHandler) ServeWs(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is required"})
		return
	}
	claims, err := h.Tokens.Parse(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}
	accountID := claims.Subject
	log := loggerFor(c, h.Log).With(zap.String("account_id", accountID))

	upgrader := h.upgrader()
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.Hub.Register(accountID, conn)
	defer func() {
		h.Hub.Unregister(conn)
		conn.Close()
	}()

	pongWait := h.pongWait()
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go keepAlive(conn, pongWait*9/10, done, log)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn("websocket closed unexpectedly", zap.Error(err))
			}
			return
		}
	}
}

// keepAlive pings the client every period until done is closed. Browsers answer
// pings automatically, which keeps the read deadline moving.
func keepAlive(conn *websocket.Conn, period time.Duration, done <-chan struct{}, log *zap.Logger) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(time.Second)); err != nil {
				log.Debug("websocket ping failed", zap.Error(err))
				return
			}
		}
	}
}
