package ws

import (
	"log"
	"net/http"
	"os"

	"partyroom/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var wsConnections = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "partyroom_ws_connections",
	Help: "Текущее число открытых WebSocket-соединений",
})

// апгрейд сокета: токен комнаты обязателен, он же определяет,
// какую комнату клиент наблюдает
func HandleWS(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "токен обязателен"})
			return
		}

		claims, err := service.ParseRoomToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "неверный токен"})
			return
		}

		allowedOrigin := os.Getenv("ALLOWED_ORIGIN")
		upgrader := websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				if allowedOrigin == "" {
					return true
				}
				return r.Header.Get("Origin") == allowedOrigin
			},
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("ошибка обновления ws:", err)
			return
		}

		client := NewClient(claims.PlayerID, claims.RoomCode, conn, hub)
		wsConnections.Inc()
		go func() {
			defer wsConnections.Dec()
			client.Run()
		}()
	}
}
