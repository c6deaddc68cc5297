package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// лёгкий probe доступности хранилища и шины событий
func (h *Handler) CheckConnection(c *gin.Context) {
	if err := h.RoomService.CheckConnection(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "хранилище недоступно"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
