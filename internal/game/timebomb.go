package game

import (
	"math/rand"

	"partyroom/internal/domain"
)

// Time-bomb: общий для всех prompt {категория, буква}, ролей
// меньшинства нет. Передача телефона по кругу - внешняя механика,
// движок только раздаёт prompt.

type TimeBombStrategy struct{}

func (s *TimeBombStrategy) Mode() string    { return domain.ModeTimeBomb }
func (s *TimeBombStrategy) MinPlayers() int { return 2 }

func (s *TimeBombStrategy) Assign(players []*domain.Player, opts Options) (*Assignment, error) {
	category := BombCategories[rand.Intn(len(BombCategories))]
	letter := BombLetters[rand.Intn(len(BombLetters))]

	secret := domain.MarshalSecret(domain.TimeBombSecret{Category: category, Letter: letter})

	roles := make(map[string]RoleSecret, len(players))
	for _, p := range players {
		roles[p.ID] = RoleSecret{Role: domain.RolePlayer, Secret: secret}
	}

	return &Assignment{
		Roles: roles,
		GameData: map[string]interface{}{
			"category": category,
			"letter":   letter,
		},
		InitialPhase: domain.PhaseReveal,
	}, nil
}
