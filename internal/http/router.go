package httpserver

import (
	"time"

	"partyroom/internal/http/handlers"
	"partyroom/internal/http/middleware"
	"partyroom/internal/service"
	"partyroom/internal/ws"

	"github.com/gin-gonic/gin"
)

// регистрирует весь операционный контур: REST-мутации и WebSocket
// для наблюдения за комнатой
func RegisterRoutes(r *gin.Engine, roomService *service.RoomService, gameService *service.GameService, hub *ws.Hub) {
	h := handlers.NewHandler(roomService, gameService)

	r.GET("/api/health", h.CheckConnection)
	r.GET("/ws", ws.HandleWS(hub))

	api := r.Group("/api")

	// вход в систему: токена ещё нет, лимит считается по адресу
	public := api.Group("")
	public.Use(middleware.RateLimit(30, time.Minute))
	public.POST("/rooms", h.CreateRoom)
	public.POST("/rooms/:code/join", h.JoinRoom)

	// всё остальное требует сессионный токен комнаты; лимитер стоит
	// после аутентификации и считает окно по игроку
	authed := api.Group("")
	authed.Use(middleware.RoomAuth())
	authed.Use(middleware.RateLimit(30, time.Minute))

	authed.POST("/leave", h.LeaveRoom)
	authed.DELETE("/rooms/:code", h.DeleteRoom)
	authed.POST("/rooms/:code/transfer-host", h.TransferHost)

	authed.POST("/rooms/:code/start", h.StartGame)
	authed.POST("/rooms/:code/phase", h.UpdatePhase)
	authed.POST("/rooms/:code/mode", h.UpdateMode)
	authed.POST("/rooms/:code/gamedata", h.UpdateGameData)

	authed.POST("/rooms/:code/vote", h.CastVote)
	authed.POST("/rooms/:code/answer", h.SubmitAnswer)
	authed.POST("/rooms/:code/guess", h.SubmitGuess)
	authed.POST("/rooms/:code/clue", h.SubmitClue)
	authed.POST("/rooms/:code/movie", h.SubmitMovie)
	authed.POST("/rooms/:code/word", h.ChooseWord)
	authed.POST("/rooms/:code/next-turn", h.NextTurn)
	authed.POST("/rooms/:code/reveal", h.RevealResults)
	authed.POST("/rooms/:code/reset", h.ResetRoom)
}
