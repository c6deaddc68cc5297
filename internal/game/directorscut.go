package game

import (
	"math/rand"

	"partyroom/internal/domain"
)

// Режиссёрская версия: один режиссёр с тайным фильмом, остальные -
// зрители. Секреты остаются WAITING до выбора фильма; сам выбор
// приходит позже отдельной операцией и перезаписывает секреты.

type DirectorsCutStrategy struct{}

func (s *DirectorsCutStrategy) Mode() string    { return domain.ModeDirectorsCut }
func (s *DirectorsCutStrategy) MinPlayers() int { return 3 }

func (s *DirectorsCutStrategy) Assign(players []*domain.Player, opts Options) (*Assignment, error) {
	director := pickChosen(players, opts.ChosenID)

	roles := make(map[string]RoleSecret, len(players))
	for _, p := range players {
		if p.ID == director.ID {
			roles[p.ID] = RoleSecret{Role: domain.RoleDirector, Secret: domain.SecretWaiting}
		} else {
			roles[p.ID] = RoleSecret{Role: domain.RoleViewer, Secret: domain.SecretWaiting}
		}
	}

	return &Assignment{
		Roles: roles,
		// id режиссёра дублируется в game_data, чтобы состояние
		// восстанавливалось после переподключения
		GameData:     map[string]interface{}{"directorId": director.ID},
		InitialPhase: domain.PhaseSetupDirector,
	}, nil
}

// игрок, выбранный ведущим, либо случайный, если выбор пуст
// или указывает на отсутствующего
func pickChosen(players []*domain.Player, chosenID string) *domain.Player {
	if chosenID != "" {
		for _, p := range players {
			if p.ID == chosenID {
				return p
			}
		}
	}
	return players[rand.Intn(len(players))]
}
