package game

import (
	"math/rand"

	"partyroom/internal/domain"
)

// Pictionary: детерминированный порядок художников по времени входа
// (при равенстве - по id). Первый игрок рисует, остальные отгадывают.
// Счётчики хода живут в game_data - после переподключения клиент
// восстанавливает раунд и художника из комнаты без локальной памяти.

// сколько полных кругов играется до results
const PictionaryRounds = 3

type PictionaryStrategy struct{}

func (s *PictionaryStrategy) Mode() string    { return domain.ModePictionary }
func (s *PictionaryStrategy) MinPlayers() int { return 2 }

func (s *PictionaryStrategy) Assign(players []*domain.Player, opts Options) (*Assignment, error) {
	ordered := SortByJoinOrder(players)
	drawer := ordered[0]

	roles := make(map[string]RoleSecret, len(players))
	for _, p := range ordered {
		if p.ID == drawer.ID {
			roles[p.ID] = RoleSecret{Role: domain.RoleDrawer, Secret: domain.SecretWaiting}
		} else {
			roles[p.ID] = RoleSecret{Role: domain.RoleGuesser, Secret: ""}
		}
	}

	return &Assignment{
		Roles: roles,
		GameData: map[string]interface{}{
			"round":        1,
			"turnIndex":    0,
			"drawerId":     drawer.ID,
			"totalPlayers": len(players),
		},
		InitialPhase: domain.PhaseSelectWord,
	}, nil
}

// варианты слов для художника в начале хода
func DrawWordOptions(n int) []string {
	if n <= 0 || n > len(DrawWords) {
		n = 3
	}
	seen := make(map[int]bool, n)
	out := make([]string, 0, n)
	for len(out) < n {
		i := rand.Intn(len(DrawWords))
		if seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, DrawWords[i])
	}
	return out
}
