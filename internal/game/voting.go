package game

import "partyroom/internal/domain"

// Подсчёт голосов и начисление очков.

// раунд пойман/сбежал: votesAgainst - голоса против игрока меньшинства,
// total - все игроки комнаты. Строгое большинство: ровно половина при
// чётном составе НЕ ловит (2 из 4 - мимо, 3 из 5 - пойман).
func MajorityCaught(votesAgainst, total int) bool {
	return votesAgainst*2 > total
}

// считает голоса против цели по разобранным слотам
func CountVotesAgainst(players []*domain.Player, targetID string) int {
	n := 0
	for _, p := range players {
		if domain.ParseVoteSlot(p.Vote).IsTarget(targetID) {
			n++
		}
	}
	return n
}

// ищет единственного игрока меньшинства по его роли
func FindByRole(players []*domain.Player, role string) *domain.Player {
	for _, p := range players {
		if p.Role == role {
			return p
		}
	}
	return nil
}

// Начисления за раунд: playerID -> добавленные очки.
type Awards map[string]int

// результат раунда на выбывание: пойман - каждый, кроме цели, +1;
// сбежал - цель +2
func ResolveElimination(players []*domain.Player, minority *domain.Player) (caught bool, awards Awards) {
	awards = Awards{}
	if minority == nil {
		return false, awards
	}

	votes := CountVotesAgainst(players, minority.ID)
	caught = MajorityCaught(votes, len(players))

	if caught {
		for _, p := range players {
			if p.ID != minority.ID {
				awards[p.ID] = 1
			}
		}
		return true, awards
	}

	awards[minority.ID] = 2
	return false, awards
}

// радиус попадания вокруг цели wavelength
const WavelengthBand = 12

// очки wavelength: каждый отгадчик в пределах 12 от цели +1;
// экстрасенс +1, если единственная ближайшая догадка попала в полосу
// (очко не копится по каждому отгадчику)
func ResolveWavelength(target int, guesses map[string]int, psychicID string) Awards {
	awards := Awards{}

	bestDist := -1
	for id, g := range guesses {
		d := g - target
		if d < 0 {
			d = -d
		}
		if d <= WavelengthBand {
			awards[id] = 1
		}
		if bestDist == -1 || d < bestDist {
			bestDist = d
		}
	}

	if bestDist >= 0 && bestDist <= WavelengthBand {
		awards[psychicID] = awards[psychicID] + 1
	}
	return awards
}
