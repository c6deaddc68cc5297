package domain

import (
	"encoding/json"
	"time"
)

// Статусы комнаты
type RoomStatus string

const (
	StatusLobby    RoomStatus = "LOBBY"
	StatusPlaying  RoomStatus = "PLAYING"
	StatusFinished RoomStatus = "FINISHED"
)

// Теги игровых режимов
const (
	ModeUndercoverWord  = "undercover-word"
	ModeClassicImposter = "classic-imposter"
	ModeDirectorsCut    = "directors-cut"
	ModeWavelength      = "wavelength"
	ModeMindSync        = "mind-sync"
	ModeTimeBomb        = "time-bomb"
	ModePictionary      = "pictionary"
)

// Общие фазы словесных режимов
const (
	PhaseReveal     = "reveal"
	PhaseDiscussion = "discussion"
	PhaseVoting     = "voting"
	PhaseResults    = "results"
	PhaseGuessing   = "GUESSING"

	PhaseSetupDirector   = "SETUP_DIRECTOR:PLAYER"
	PhaseSelectWord      = "PICTIONARY:SELECT_WORD"
	PhaseDrawing         = "PICTIONARY:DRAWING"
	PhaseTurnEnd         = "PICTIONARY:TURN_END"
	PhaseMindSyncAnswers = "MINDSYNC:ANSWERING"
)

// Room - одна игровая сессия, идентифицируется 4-буквенным кодом.
// Код неизменяем после создания; статус движется только
// LOBBY -> PLAYING -> FINISHED либо обратно в LOBBY при явном сбросе.
type Room struct {
	Code      string          `db:"code" json:"code"`
	Status    RoomStatus      `db:"status" json:"status"`
	GameMode  string          `db:"game_mode" json:"game_mode"`
	CurrPhase string          `db:"curr_phase" json:"curr_phase"`
	GameData  json.RawMessage `db:"game_data" json:"game_data"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

// разбирает game_data в map; пустой payload возвращает пустую map.
// Битый JSON считается восстановимым: возвращаем ErrMalformedPayload,
// вызывающий обязан подставить безопасное значение по умолчанию.
func (r *Room) GameDataMap() (map[string]interface{}, error) {
	if len(r.GameData) == 0 {
		return map[string]interface{}{}, nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(r.GameData, &m); err != nil {
		return map[string]interface{}{}, ErrMalformedPayload
	}
	if m == nil {
		m = map[string]interface{}{}
	}
	return m, nil
}
