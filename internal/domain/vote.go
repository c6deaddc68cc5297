package domain

import "github.com/google/uuid"

// Колонка vote перегружена: в фазе голосования она хранит id цели,
// в других режимах - статусную метку («ответил», «угадал»).
// VoteSlot разбирает её в явный tagged union, чтобы логика режимов
// не сравнивала сырые строки.

const (
	VoteStatusAnswered = "ANSWERED"
	VoteStatusCorrect  = "CORRECT"
)

type VoteKind int

const (
	VoteEmpty VoteKind = iota
	VoteTarget
	VoteStatus
)

type VoteSlot struct {
	Kind     VoteKind
	TargetID string // заполнено при Kind == VoteTarget
	Status   string // заполнено при Kind == VoteStatus
}

// разбирает сырое значение колонки vote. Идентификаторы игроков -
// всегда UUID, статусные метки - нет, поэтому коллизий между ветками
// не бывает.
func ParseVoteSlot(raw string) VoteSlot {
	if raw == "" {
		return VoteSlot{Kind: VoteEmpty}
	}
	if _, err := uuid.Parse(raw); err == nil {
		return VoteSlot{Kind: VoteTarget, TargetID: raw}
	}
	return VoteSlot{Kind: VoteStatus, Status: raw}
}

func (v VoteSlot) IsTarget(playerID string) bool {
	return v.Kind == VoteTarget && v.TargetID == playerID
}

func (v VoteSlot) HasStatus(tag string) bool {
	return v.Kind == VoteStatus && v.Status == tag
}
