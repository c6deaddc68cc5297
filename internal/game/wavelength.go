package game

import (
	"math/rand"

	"partyroom/internal/domain"
)

// Wavelength: случайный спектр и случайная цель в [0,100).
// Экстрасенс видит цель, отгадчики - только спектр.

type WavelengthStrategy struct{}

func (s *WavelengthStrategy) Mode() string    { return domain.ModeWavelength }
func (s *WavelengthStrategy) MinPlayers() int { return 3 }

func (s *WavelengthStrategy) Assign(players []*domain.Player, opts Options) (*Assignment, error) {
	spectrum := Spectrums[rand.Intn(len(Spectrums))]
	target := rand.Intn(100)

	psychic := pickChosen(players, opts.ChosenID)

	roles := make(map[string]RoleSecret, len(players))
	for _, p := range players {
		if p.ID == psychic.ID {
			roles[p.ID] = RoleSecret{
				Role:   domain.RolePsychic,
				Secret: domain.MarshalSecret(domain.WavelengthSecret{Spectrum: spectrum, Target: &target}),
			}
		} else {
			roles[p.ID] = RoleSecret{
				Role:   domain.RoleGuesser,
				Secret: domain.MarshalSecret(domain.WavelengthSecret{Spectrum: spectrum, Target: nil}),
			}
		}
	}

	return &Assignment{
		Roles: roles,
		GameData: map[string]interface{}{
			"spectrum":  spectrum,
			"target":    target,
			"psychicId": psychic.ID,
		},
		InitialPhase: domain.PhaseReveal,
	}, nil
}
