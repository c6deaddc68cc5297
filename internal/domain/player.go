package domain

import (
	"strings"
	"time"
)

// Роли, которые выдают стратегии режимов
const (
	RoleCrewmate   = "crewmate"
	RoleImposter   = "imposter"
	RoleUndercover = "undercover"
	RoleDirector   = "director"
	RoleViewer     = "viewer"
	RolePsychic    = "psychic"
	RoleGuesser    = "guesser"
	RoleOutlier    = "outlier"
	RoleSync       = "sync"
	RoleDrawer     = "drawer"
	RolePlayer     = "player"
)

// Player - один участник комнаты. Живёт не дольше самой комнаты.
// created_at используется только как стабильный ключ сортировки
// для порядка ходов (при равенстве - id).
type Player struct {
	ID         string    `db:"id" json:"id"`
	RoomCode   string    `db:"room_code" json:"room_code"`
	Name       string    `db:"name" json:"name"`
	IsHost     bool      `db:"is_host" json:"is_host"`
	Role       string    `db:"role" json:"role"`
	SecretWord string    `db:"secret_word" json:"secret_word"`
	Vote       string    `db:"vote" json:"vote"`
	Score      int       `db:"score" json:"score"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// сравнивает имена без учёта регистра и окружающих пробелов -
// правило уникальности имени внутри комнаты
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
