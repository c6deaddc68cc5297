package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestParseVoteSlot(t *testing.T) {
	if got := ParseVoteSlot(""); got.Kind != VoteEmpty {
		t.Errorf("пустое значение - пустой слот, получено %+v", got)
	}

	id := uuid.NewString()
	if got := ParseVoteSlot(id); got.Kind != VoteTarget || got.TargetID != id {
		t.Errorf("uuid разбирается как цель, получено %+v", got)
	}

	if got := ParseVoteSlot(VoteStatusAnswered); got.Kind != VoteStatus || got.Status != VoteStatusAnswered {
		t.Errorf("метка разбирается как статус, получено %+v", got)
	}
	if got := ParseVoteSlot(VoteStatusCorrect); !got.HasStatus(VoteStatusCorrect) {
		t.Errorf("ожидалась метка CORRECT, получено %+v", got)
	}
}

func TestVoteSlot_IsTarget(t *testing.T) {
	id := uuid.NewString()
	other := uuid.NewString()

	slot := ParseVoteSlot(id)
	if !slot.IsTarget(id) {
		t.Errorf("слот должен указывать на %s", id)
	}
	if slot.IsTarget(other) {
		t.Errorf("слот не должен указывать на чужой id")
	}
	if ParseVoteSlot(VoteStatusAnswered).IsTarget(id) {
		t.Errorf("статусная метка не цель")
	}
}
