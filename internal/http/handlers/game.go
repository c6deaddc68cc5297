package handlers

import (
	"encoding/json"
	"net/http"

	"partyroom/internal/domain"
	"partyroom/internal/game"
	"partyroom/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// Запуск игры выбранного режима
func (h *Handler) StartGame(c *gin.Context) {
	playerID, ok := middleware.PlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		Mode      string   `json:"mode"`
		Themes    []string `json:"themes"`
		HintLevel string   `json:"hint_level"`
		ChosenID  string   `json:"chosen_id"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	opts := game.Options{
		Themes:    req.Themes,
		HintLevel: req.HintLevel,
		ChosenID:  req.ChosenID,
	}
	if err := h.GameService.StartGame(c.Request.Context(), c.Param("code"), playerID, req.Mode, opts); err != nil {
		respondError(c, err)
		return
	}
	gamesStarted.WithLabelValues(req.Mode).Inc()

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Переход фазы (идемпотентный)
func (h *Handler) UpdatePhase(c *gin.Context) {
	playerID, ok := middleware.PlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		Phase string `json:"phase"`
	}
	if err := c.BindJSON(&req); err != nil || req.Phase == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	if err := h.GameService.UpdatePhase(c.Request.Context(), c.Param("code"), playerID, req.Phase); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Смена режима в лобби
func (h *Handler) UpdateMode(c *gin.Context) {
	playerID, ok := middleware.PlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		Mode string `json:"mode"`
	}
	if err := c.BindJSON(&req); err != nil || req.Mode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	if err := h.GameService.UpdateMode(c.Request.Context(), c.Param("code"), playerID, req.Mode); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Прямое обновление game_data комнаты
func (h *Handler) UpdateGameData(c *gin.Context) {
	playerID, ok := middleware.PlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		GameData json.RawMessage `json:"game_data"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	if err := h.GameService.UpdateGameData(c.Request.Context(), c.Param("code"), playerID, req.GameData); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Голос на выбывание
func (h *Handler) CastVote(c *gin.Context) {
	playerID, ok := middleware.PlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		TargetID string `json:"target_id"`
	}
	if err := c.BindJSON(&req); err != nil || req.TargetID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	if err := h.GameService.CastVote(c.Request.Context(), playerID, req.TargetID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Свободный ответ mind-sync
func (h *Handler) SubmitAnswer(c *gin.Context) {
	playerID, ok := middleware.PlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		Answer string `json:"answer"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	if err := h.GameService.SubmitAnswer(c.Request.Context(), playerID, req.Answer); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Догадка pictionary / название фильма directors-cut
func (h *Handler) SubmitGuess(c *gin.Context) {
	playerID, ok := middleware.PlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		Guess    string `json:"guess"`
		Position *int   `json:"position"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	// числовая позиция wavelength приходит тем же эндпоинтом
	if req.Position != nil {
		if err := h.GameService.SubmitPosition(c.Request.Context(), playerID, *req.Position); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	result, err := h.GameService.SubmitGuess(c.Request.Context(), playerID, req.Guess)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Наводка экстрасенса wavelength
func (h *Handler) SubmitClue(c *gin.Context) {
	playerID, ok := middleware.PlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		Clue string `json:"clue"`
	}
	if err := c.BindJSON(&req); err != nil || req.Clue == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	if err := h.GameService.SubmitClue(c.Request.Context(), playerID, req.Clue); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Выбор фильма режиссёром
func (h *Handler) SubmitMovie(c *gin.Context) {
	playerID, ok := middleware.PlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		Title string `json:"title"`
		Genre string `json:"genre"`
		Year  int    `json:"year"`
		Timer int    `json:"timer"`
	}
	if err := c.BindJSON(&req); err != nil || req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	movie := domain.DirectorSecret{Title: req.Title, Genre: req.Genre, Year: req.Year, Timer: req.Timer}
	if err := h.GameService.SubmitMovie(c.Request.Context(), playerID, movie); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Выбор слова художником; без тела возвращает варианты
func (h *Handler) ChooseWord(c *gin.Context) {
	playerID, ok := middleware.PlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		Word string `json:"word"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	if req.Word == "" {
		c.JSON(http.StatusOK, gin.H{"options": game.DrawWordOptions(3)})
		return
	}

	if err := h.GameService.ChooseWord(c.Request.Context(), playerID, req.Word); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Конец хода pictionary
func (h *Handler) NextTurn(c *gin.Context) {
	playerID, ok := middleware.PlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.GameService.NextTurn(c.Request.Context(), c.Param("code"), playerID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Раскрытие результатов раунда
func (h *Handler) RevealResults(c *gin.Context) {
	playerID, ok := middleware.PlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		WinnerID string `json:"winner_id"`
	}
	// тело опционально: победителя задаёт только режиссёр
	_ = c.BindJSON(&req)

	result, err := h.GameService.RevealResults(c.Request.Context(), c.Param("code"), playerID, req.WinnerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Возврат комнаты в лобби
func (h *Handler) ResetRoom(c *gin.Context) {
	playerID, ok := middleware.PlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		ResetScores bool `json:"reset_scores"`
	}
	_ = c.BindJSON(&req)

	if err := h.GameService.ResetRoom(c.Request.Context(), c.Param("code"), playerID, req.ResetScores); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
