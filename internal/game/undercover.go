package game

import (
	"math/rand"

	"partyroom/internal/domain"
)

// Словесные режимы на выбывание: одна случайная тема, одна случайная
// пара слов, один случайный игрок меньшинства. В undercover-word
// меньшинство получает только подсказку, в classic-imposter - другое
// слово той же пары.

// заглушка вместо отсутствующей подсказки
const hintFallback = "Ты не знаешь слово. Не выдай себя!"

const (
	HintNone   = "none"
	HintLow    = "low"
	HintMedium = "medium"
)

type UndercoverStrategy struct{}

func (s *UndercoverStrategy) Mode() string    { return domain.ModeUndercoverWord }
func (s *UndercoverStrategy) MinPlayers() int { return 3 }

func (s *UndercoverStrategy) Assign(players []*domain.Player, opts Options) (*Assignment, error) {
	pair := pickPair(opts.Themes)
	return assignWordPair(players, domain.RoleImposter, domain.RoleCrewmate,
		pair.Word, imposterHint(pair, opts.HintLevel)), nil
}

type ClassicImposterStrategy struct{}

func (s *ClassicImposterStrategy) Mode() string    { return domain.ModeClassicImposter }
func (s *ClassicImposterStrategy) MinPlayers() int { return 3 }

func (s *ClassicImposterStrategy) Assign(players []*domain.Player, opts Options) (*Assignment, error) {
	pair := pickPair(opts.Themes)
	return assignWordPair(players, domain.RoleUndercover, domain.RoleCrewmate,
		pair.Word, pair.Alt), nil
}

// выбирает случайную пару слов из тем, отфильтрованных выбором
// ведущего; пустой результат фильтра откатывается на полный список
func pickPair(selected []string) WordPair {
	themes := filterThemes(selected)
	theme := themes[rand.Intn(len(themes))]
	return theme.Pairs[rand.Intn(len(theme.Pairs))]
}

func filterThemes(selected []string) []Theme {
	if len(selected) == 0 {
		return Themes
	}
	wanted := make(map[string]bool, len(selected))
	for _, name := range selected {
		wanted[name] = true
	}
	var out []Theme
	for _, t := range Themes {
		if wanted[t.Name] {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return Themes
	}
	return out
}

// подсказка самозванцу: выбранный уровень, затем low,
// затем фиксированная заглушка
func imposterHint(pair WordPair, level string) string {
	if level == "" {
		level = HintLow
	}
	switch level {
	case HintNone:
		return hintFallback
	case HintMedium:
		if pair.HintMedium != "" {
			return pair.HintMedium
		}
	}
	if pair.HintLow != "" {
		return pair.HintLow
	}
	return hintFallback
}

func assignWordPair(players []*domain.Player, minorityRole, majorityRole, word, minoritySecret string) *Assignment {
	minority := players[rand.Intn(len(players))]

	roles := make(map[string]RoleSecret, len(players))
	for _, p := range players {
		if p.ID == minority.ID {
			roles[p.ID] = RoleSecret{Role: minorityRole, Secret: minoritySecret}
		} else {
			roles[p.ID] = RoleSecret{Role: majorityRole, Secret: word}
		}
	}

	return &Assignment{
		Roles:        roles,
		GameData:     map[string]interface{}{"round": 1},
		InitialPhase: domain.PhaseReveal,
	}
}
