package middleware

import (
	"net/http"
	"strings"

	"partyroom/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	ctxPlayerID = "player_id"
	ctxRoomCode = "room_code"
)

// проверяет сессионный токен комнаты и кладёт привязку
// (игрок, комната) в контекст запроса
func RoomAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("Authorization")
		raw = strings.TrimPrefix(raw, "Bearer ")
		if raw == "" {
			raw = c.Query("token")
		}
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "токен обязателен"})
			return
		}

		claims, err := service.ParseRoomToken(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "неверный токен"})
			return
		}

		c.Set(ctxPlayerID, claims.PlayerID)
		c.Set(ctxRoomCode, claims.RoomCode)
		c.Next()
	}
}

// привязка текущего запроса к игроку
func PlayerID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxPlayerID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func RoomCode(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxRoomCode)
	if !ok {
		return "", false
	}
	code, ok := v.(string)
	return code, ok && code != ""
}
