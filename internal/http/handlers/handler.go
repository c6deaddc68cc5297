package handlers

import (
	"errors"
	"net/http"

	"partyroom/internal/domain"
	"partyroom/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Зависимости HTTP-слоя.
type Handler struct {
	RoomService *service.RoomService
	GameService *service.GameService
}

func NewHandler(roomService *service.RoomService, gameService *service.GameService) *Handler {
	return &Handler{RoomService: roomService, GameService: gameService}
}

var (
	roomsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "partyroom_rooms_created_total",
		Help: "Сколько комнат создано",
	})
	gamesStarted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "partyroom_games_started_total",
		Help: "Сколько игр запущено, по режимам",
	}, []string{"mode"})
)

// переводит ошибку доменного слоя в HTTP-ответ; текст уходит игроку
// как есть
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyStarted),
		errors.Is(err, domain.ErrNameTaken),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrInsufficientPlayers),
		errors.Is(err, domain.ErrBadPhase),
		errors.Is(err, domain.ErrUnknownMode),
		errors.Is(err, domain.ErrMalformedPayload):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrPermissionDenied),
		errors.Is(err, domain.ErrNotHost):
		status = http.StatusForbidden
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
