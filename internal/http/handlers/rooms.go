package handlers

import (
	"net/http"

	"partyroom/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// Создание комнаты: ведущий входит сразу, в ответе его сессионный токен
func (h *Handler) CreateRoom(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
		Mode string `json:"mode"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	room, host, token, err := h.RoomService.CreateRoom(c.Request.Context(), req.Name, req.Mode)
	if err != nil {
		respondError(c, err)
		return
	}
	roomsCreated.Inc()

	c.JSON(http.StatusOK, gin.H{
		"room":   room,
		"player": host,
		"token":  token,
	})
}

// Вход в комнату по коду
func (h *Handler) JoinRoom(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	room, player, token, err := h.RoomService.JoinRoom(c.Request.Context(), req.Name, c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"room":   room,
		"player": player,
		"token":  token,
	})
}

// Выход из комнаты; при уходе ведущего статус мигрирует до удаления
func (h *Handler) LeaveRoom(c *gin.Context) {
	playerID, ok := middleware.PlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.RoomService.LeaveRoom(c.Request.Context(), playerID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Снос комнаты целиком (только ведущий)
func (h *Handler) DeleteRoom(c *gin.Context) {
	playerID, ok := middleware.PlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	code := c.Param("code")

	if _, err := h.GameService.RequireHost(c.Request.Context(), code, playerID); err != nil {
		respondError(c, err)
		return
	}
	if err := h.RoomService.DeleteRoom(c.Request.Context(), code); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Явная передача статуса ведущего
func (h *Handler) TransferHost(c *gin.Context) {
	playerID, ok := middleware.PlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		NewHostID string `json:"new_host_id"`
	}
	if err := c.BindJSON(&req); err != nil || req.NewHostID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	if err := h.RoomService.TransferHost(c.Request.Context(), playerID, req.NewHostID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
