package game

import (
	"math/rand"

	"partyroom/internal/domain"
)

// Mind-sync: все получают основной вопрос категории, один случайный
// игрок - вопрос-обманку той же категории. Ответы дописываются в
// секрет позже, факт ответа отмечается статусной меткой в колонке
// vote, чтобы её можно было посчитать без разбора текста.

type MindSyncStrategy struct{}

func (s *MindSyncStrategy) Mode() string    { return domain.ModeMindSync }
func (s *MindSyncStrategy) MinPlayers() int { return 3 }

func (s *MindSyncStrategy) Assign(players []*domain.Player, opts Options) (*Assignment, error) {
	pair := QuestionPairs[rand.Intn(len(QuestionPairs))]
	outlier := players[rand.Intn(len(players))]

	roles := make(map[string]RoleSecret, len(players))
	for _, p := range players {
		if p.ID == outlier.ID {
			roles[p.ID] = RoleSecret{
				Role:   domain.RoleOutlier,
				Secret: domain.MarshalSecret(domain.MindSyncSecret{Question: pair.Outlier}),
			}
		} else {
			roles[p.ID] = RoleSecret{
				Role:   domain.RoleSync,
				Secret: domain.MarshalSecret(domain.MindSyncSecret{Question: pair.Main}),
			}
		}
	}

	return &Assignment{
		Roles:        roles,
		GameData:     map[string]interface{}{"category": pair.Category},
		InitialPhase: domain.PhaseMindSyncAnswers,
	}, nil
}
