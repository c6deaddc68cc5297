package game

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"partyroom/internal/domain"
)

func makePlayers(n int) []*domain.Player {
	players := make([]*domain.Player, 0, n)
	base := time.Now()
	for i := 0; i < n; i++ {
		players = append(players, &domain.Player{
			ID:        uuid.NewString(),
			RoomCode:  "ABCD",
			Name:      "игрок",
			Role:      domain.RolePlayer,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
	}
	return players
}

func TestMajorityCaught(t *testing.T) {
	cases := []struct {
		votes, total int
		want         bool
	}{
		{2, 4, false}, // ровно половина не ловит
		{3, 4, true},
		{3, 5, true},
		{2, 5, false},
		{3, 6, false},
		{4, 6, true},
		{2, 3, true},
		{0, 3, false},
	}
	for _, c := range cases {
		if got := MajorityCaught(c.votes, c.total); got != c.want {
			t.Errorf("MajorityCaught(%d, %d) = %v, ожидалось %v", c.votes, c.total, got, c.want)
		}
	}
}

func TestResolveElimination_Caught(t *testing.T) {
	players := makePlayers(5)
	minority := players[2]
	minority.Role = domain.RoleImposter

	// три голоса против из пяти - поймали
	players[0].Vote = minority.ID
	players[1].Vote = minority.ID
	players[3].Vote = minority.ID
	players[4].Vote = players[0].ID
	minority.Vote = players[0].ID

	caught, awards := ResolveElimination(players, minority)
	if !caught {
		t.Fatalf("3 голоса из 5 должны ловить")
	}
	if _, ok := awards[minority.ID]; ok {
		t.Errorf("пойманному очки не начисляются")
	}
	for _, p := range players {
		if p.ID == minority.ID {
			continue
		}
		if awards[p.ID] != 1 {
			t.Errorf("каждому, кроме цели, положено +1, у %s %d", p.ID, awards[p.ID])
		}
	}
}

func TestResolveElimination_Escaped(t *testing.T) {
	players := makePlayers(4)
	minority := players[0]
	minority.Role = domain.RoleImposter

	// два голоса из четырёх - не большинство
	players[1].Vote = minority.ID
	players[2].Vote = minority.ID
	players[3].Vote = players[1].ID

	caught, awards := ResolveElimination(players, minority)
	if caught {
		t.Fatalf("2 голоса из 4 не должны ловить")
	}
	if awards[minority.ID] != 2 {
		t.Errorf("сбежавшему положено +2, получено %d", awards[minority.ID])
	}
	if len(awards) != 1 {
		t.Errorf("очки только сбежавшему, получено %v", awards)
	}
}

func TestResolveElimination_NoMinority(t *testing.T) {
	players := makePlayers(3)
	caught, awards := ResolveElimination(players, nil)
	if caught || len(awards) != 0 {
		t.Errorf("без цели раунд пустой: caught=%v awards=%v", caught, awards)
	}
}

func TestCountVotesAgainst_IgnoresStatuses(t *testing.T) {
	players := makePlayers(3)
	target := players[0].ID
	players[1].Vote = target
	players[2].Vote = domain.VoteStatusAnswered

	if n := CountVotesAgainst(players, target); n != 1 {
		t.Errorf("статусные отметки не голоса: получено %d", n)
	}
}

func TestResolveWavelength(t *testing.T) {
	psychic := uuid.NewString()
	near := uuid.NewString()
	edge := uuid.NewString()
	far := uuid.NewString()

	awards := ResolveWavelength(50, map[string]int{
		near: 45, // в полосе
		edge: 62, // ровно на границе
		far:  80, // мимо
	}, psychic)

	if awards[near] != 1 || awards[edge] != 1 {
		t.Errorf("попавшим в полосу положено +1: %v", awards)
	}
	if _, ok := awards[far]; ok {
		t.Errorf("промахнувшемуся очков нет: %v", awards)
	}
	// экстрасенсу ровно одно очко, сколько бы отгадчиков ни попало
	if awards[psychic] != 1 {
		t.Errorf("экстрасенсу положено +1 за ближайшую догадку, получено %d", awards[psychic])
	}
}

func TestResolveWavelength_AllMissed(t *testing.T) {
	psychic := uuid.NewString()
	awards := ResolveWavelength(10, map[string]int{
		uuid.NewString(): 40,
		uuid.NewString(): 90,
	}, psychic)

	if len(awards) != 0 {
		t.Errorf("при всеобщем промахе очков нет: %v", awards)
	}
}

func TestResolveWavelength_NoGuesses(t *testing.T) {
	awards := ResolveWavelength(10, nil, uuid.NewString())
	if len(awards) != 0 {
		t.Errorf("без догадок очков нет: %v", awards)
	}
}
