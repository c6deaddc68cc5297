package game

import "partyroom/internal/domain"

// Машина фаз. Каждый режим задаёт свой путь; машина пропускает
// движение вперёд по пути и повторную установку той же фазы
// (идемпотентная запись), у pictionary дополнительно разрешён цикл
// хода. Фазы вне пути не блокируются: режимы вправе вводить свои
// промежуточные состояния.

var phasePaths = map[string][]string{
	domain.ModeUndercoverWord:  {domain.PhaseReveal, domain.PhaseDiscussion, domain.PhaseVoting, domain.PhaseResults},
	domain.ModeClassicImposter: {domain.PhaseReveal, domain.PhaseDiscussion, domain.PhaseVoting, domain.PhaseResults},
	domain.ModeTimeBomb:        {domain.PhaseReveal, domain.PhaseDiscussion, domain.PhaseVoting, domain.PhaseResults},
	domain.ModeMindSync:        {domain.PhaseMindSyncAnswers, domain.PhaseDiscussion, domain.PhaseVoting, domain.PhaseResults},
	domain.ModeWavelength:      {domain.PhaseReveal, domain.PhaseGuessing, domain.PhaseResults},
	domain.ModeDirectorsCut:    {domain.PhaseSetupDirector, domain.PhaseGuessing, domain.PhaseResults},
	domain.ModePictionary:      {domain.PhaseSelectWord, domain.PhaseDrawing, domain.PhaseTurnEnd, domain.PhaseResults},
}

// проверяет допустимость перехода фазы для режима
func CanTransition(mode, from, to string) bool {
	// повторная запись того же значения - всегда no-op
	if from == to {
		return true
	}

	// цикл хода pictionary: конец хода открывает выбор слова
	// следующему художнику
	if mode == domain.ModePictionary && from == domain.PhaseTurnEnd && to == domain.PhaseSelectWord {
		return true
	}

	path, ok := phasePaths[mode]
	if !ok {
		return true
	}

	fi := phaseIndex(path, from)
	ti := phaseIndex(path, to)
	// неизвестные фазы пропускаем: машина запрещает только
	// движение назад по известному пути
	if fi == -1 || ti == -1 {
		return true
	}
	return ti > fi
}

// терминальная фаза: комната переходит в FINISHED
func IsTerminal(phase string) bool {
	return phase == domain.PhaseResults
}

func phaseIndex(path []string, phase string) int {
	for i, p := range path {
		if p == phase {
			return i
		}
	}
	return -1
}
