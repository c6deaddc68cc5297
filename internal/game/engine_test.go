package game

import (
	"encoding/json"
	"errors"
	"testing"

	"partyroom/internal/domain"
)

func TestRegistry_UnknownMode(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Get("rock-paper-scissors"); !errors.Is(err, domain.ErrUnknownMode) {
		t.Fatalf("ожидалась ErrUnknownMode, получено %v", err)
	}
}

func TestRegistry_MinPlayers(t *testing.T) {
	r := NewRegistry()
	cases := []struct {
		mode string
		min  int
	}{
		{domain.ModeUndercoverWord, 3},
		{domain.ModeClassicImposter, 3},
		{domain.ModeDirectorsCut, 3},
		{domain.ModeWavelength, 3},
		{domain.ModeMindSync, 3},
		{domain.ModeTimeBomb, 2},
		{domain.ModePictionary, 2},
	}
	for _, c := range cases {
		players := makePlayers(c.min - 1)
		if _, err := r.Assign(c.mode, players, Options{}); !errors.Is(err, domain.ErrInsufficientPlayers) {
			t.Errorf("%s: при %d игроках ожидалась ErrInsufficientPlayers, получено %v", c.mode, c.min-1, err)
		}
		if _, err := r.Assign(c.mode, makePlayers(c.min), Options{}); err != nil {
			t.Errorf("%s: при %d игроках раздача должна проходить: %v", c.mode, c.min, err)
		}
	}
}

func TestUndercover_Assign(t *testing.T) {
	players := makePlayers(5)
	a, err := (&UndercoverStrategy{}).Assign(players, Options{HintLevel: HintLow})
	if err != nil {
		t.Fatal(err)
	}

	imposters := 0
	var word string
	for _, p := range players {
		rs, ok := a.Roles[p.ID]
		if !ok {
			t.Fatalf("игрок %s без роли", p.ID)
		}
		if rs.Role == domain.RoleImposter {
			imposters++
			continue
		}
		if rs.Role != domain.RoleCrewmate {
			t.Errorf("неожиданная роль %q", rs.Role)
		}
		if word == "" {
			word = rs.Secret
		} else if rs.Secret != word {
			t.Errorf("у большинства одно общее слово")
		}
	}
	if imposters != 1 {
		t.Fatalf("ровно один самозванец, получено %d", imposters)
	}

	// самозванец получает подсказку, а не слово
	for id, rs := range a.Roles {
		if rs.Role == domain.RoleImposter && rs.Secret == word {
			t.Errorf("секрет самозванца %s совпал со словом большинства", id)
		}
	}
	if a.InitialPhase != domain.PhaseReveal {
		t.Errorf("стартовая фаза %q", a.InitialPhase)
	}
}

func TestClassicImposter_Assign(t *testing.T) {
	players := makePlayers(4)
	a, err := (&ClassicImposterStrategy{}).Assign(players, Options{})
	if err != nil {
		t.Fatal(err)
	}

	var word, alt string
	for _, rs := range a.Roles {
		switch rs.Role {
		case domain.RoleUndercover:
			alt = rs.Secret
		case domain.RoleCrewmate:
			word = rs.Secret
		}
	}
	// меньшинство играет другим словом той же пары, не подсказкой
	if alt == "" || word == "" || alt == word {
		t.Errorf("слова пары должны различаться: %q / %q", word, alt)
	}
}

func TestImposterHint_Fallback(t *testing.T) {
	pair := WordPair{Word: "пицца", HintLow: "итальянская еда", HintMedium: "еда с сыром и тестом"}

	if got := imposterHint(pair, HintMedium); got != pair.HintMedium {
		t.Errorf("medium: получено %q", got)
	}
	if got := imposterHint(pair, ""); got != pair.HintLow {
		t.Errorf("пустой уровень откатывается на low: получено %q", got)
	}
	if got := imposterHint(pair, HintNone); got != hintFallback {
		t.Errorf("none: получено %q", got)
	}
	// нет medium - падаем на low
	if got := imposterHint(WordPair{Word: "x", HintLow: "низкая"}, HintMedium); got != "низкая" {
		t.Errorf("без medium падаем на low: получено %q", got)
	}
	// нет вообще подсказок - заглушка
	if got := imposterHint(WordPair{Word: "x"}, HintLow); got != hintFallback {
		t.Errorf("без подсказок положена заглушка: получено %q", got)
	}
}

func TestFilterThemes(t *testing.T) {
	if got := filterThemes(nil); len(got) != len(Themes) {
		t.Errorf("пустой фильтр возвращает все темы")
	}
	// несуществующая тема откатывается на полный список
	if got := filterThemes([]string{"такой темы нет"}); len(got) != len(Themes) {
		t.Errorf("пустой результат фильтра откатывается на полный список")
	}
	name := Themes[0].Name
	got := filterThemes([]string{name})
	if len(got) != 1 || got[0].Name != name {
		t.Errorf("фильтр по одной теме: получено %d тем", len(got))
	}
}

func TestWavelength_Assign(t *testing.T) {
	players := makePlayers(4)
	chosen := players[2]
	a, err := (&WavelengthStrategy{}).Assign(players, Options{ChosenID: chosen.ID})
	if err != nil {
		t.Fatal(err)
	}

	if a.GameData["psychicId"] != chosen.ID {
		t.Errorf("явный выбор экстрасенса должен уважаться")
	}
	target, ok := a.GameData["target"].(int)
	if !ok || target < 0 || target >= 100 {
		t.Errorf("цель вне диапазона [0,100): %v", a.GameData["target"])
	}

	for _, p := range players {
		rs := a.Roles[p.ID]
		var sec domain.WavelengthSecret
		if err := json.Unmarshal([]byte(rs.Secret), &sec); err != nil {
			t.Fatalf("секрет %s не разбирается: %v", p.ID, err)
		}
		if p.ID == chosen.ID {
			if rs.Role != domain.RolePsychic || sec.Target == nil || *sec.Target != target {
				t.Errorf("экстрасенс должен видеть цель")
			}
		} else {
			if rs.Role != domain.RoleGuesser || sec.Target != nil {
				t.Errorf("отгадчик не должен видеть цель")
			}
			if sec.Spectrum.Left == "" || sec.Spectrum.Right == "" {
				t.Errorf("отгадчику положен спектр")
			}
		}
	}
}

func TestMindSync_Assign(t *testing.T) {
	players := makePlayers(5)
	a, err := (&MindSyncStrategy{}).Assign(players, Options{})
	if err != nil {
		t.Fatal(err)
	}

	outliers := 0
	questions := map[string]int{}
	for _, rs := range a.Roles {
		var sec domain.MindSyncSecret
		if err := json.Unmarshal([]byte(rs.Secret), &sec); err != nil {
			t.Fatal(err)
		}
		questions[sec.Question]++
		if rs.Role == domain.RoleOutlier {
			outliers++
		}
	}
	if outliers != 1 {
		t.Fatalf("ровно один игрок с вопросом-обманкой, получено %d", outliers)
	}
	if len(questions) != 2 {
		t.Errorf("должно быть ровно два разных вопроса, получено %d", len(questions))
	}
	if a.GameData["category"] == "" {
		t.Errorf("категория вопроса публикуется в game_data")
	}
}

func TestTimeBomb_Assign(t *testing.T) {
	players := makePlayers(2)
	a, err := (&TimeBombStrategy{}).Assign(players, Options{})
	if err != nil {
		t.Fatal(err)
	}

	var first string
	for _, rs := range a.Roles {
		if rs.Role != domain.RolePlayer {
			t.Errorf("в time-bomb нет ролей меньшинства")
		}
		if first == "" {
			first = rs.Secret
		} else if rs.Secret != first {
			t.Errorf("prompt общий для всех")
		}
	}
	var sec domain.TimeBombSecret
	if err := json.Unmarshal([]byte(first), &sec); err != nil {
		t.Fatal(err)
	}
	if sec.Category == "" || sec.Letter == "" {
		t.Errorf("prompt должен содержать категорию и букву: %+v", sec)
	}
}

func TestPictionary_Assign(t *testing.T) {
	players := makePlayers(3)
	// перемешанный вход: порядок определяется по created_at
	shuffled := []*domain.Player{players[2], players[0], players[1]}

	a, err := (&PictionaryStrategy{}).Assign(shuffled, Options{})
	if err != nil {
		t.Fatal(err)
	}

	// художник - самый ранний по входу, а не первый в срезе
	if a.GameData["drawerId"] != players[0].ID {
		t.Errorf("первым рисует самый ранний игрок")
	}
	if rs := a.Roles[players[0].ID]; rs.Role != domain.RoleDrawer || rs.Secret != domain.SecretWaiting {
		t.Errorf("художник стартует с WAITING: %+v", rs)
	}
	for _, p := range players[1:] {
		if rs := a.Roles[p.ID]; rs.Role != domain.RoleGuesser || rs.Secret != "" {
			t.Errorf("отгадчик стартует без секрета: %+v", rs)
		}
	}
	if a.GameData["round"] != 1 || a.GameData["turnIndex"] != 0 || a.GameData["totalPlayers"] != 3 {
		t.Errorf("стартовые счётчики хода: %v", a.GameData)
	}
	if a.InitialPhase != domain.PhaseSelectWord {
		t.Errorf("стартовая фаза %q", a.InitialPhase)
	}
}

func TestDirectorsCut_Assign(t *testing.T) {
	players := makePlayers(3)
	a, err := (&DirectorsCutStrategy{}).Assign(players, Options{ChosenID: players[1].ID})
	if err != nil {
		t.Fatal(err)
	}

	if a.GameData["directorId"] != players[1].ID {
		t.Errorf("явный выбор режиссёра должен уважаться")
	}
	for _, p := range players {
		rs := a.Roles[p.ID]
		if rs.Secret != domain.SecretWaiting {
			t.Errorf("до выбора фильма все секреты WAITING: %+v", rs)
		}
		want := domain.RoleViewer
		if p.ID == players[1].ID {
			want = domain.RoleDirector
		}
		if rs.Role != want {
			t.Errorf("роль %s: ожидалась %s, получена %s", p.ID, want, rs.Role)
		}
	}
	if a.InitialPhase != domain.PhaseSetupDirector {
		t.Errorf("стартовая фаза %q", a.InitialPhase)
	}
}

// выбор, указывающий на отсутствующего игрока, заменяется случайным
func TestPickChosen_MissingID(t *testing.T) {
	players := makePlayers(3)
	got := pickChosen(players, "нет-такого-id")
	found := false
	for _, p := range players {
		if p == got {
			found = true
		}
	}
	if !found {
		t.Fatalf("выбран игрок не из комнаты")
	}
}

func TestDrawWordOptions(t *testing.T) {
	words := DrawWordOptions(3)
	if len(words) != 3 {
		t.Fatalf("ожидалось 3 слова, получено %d", len(words))
	}
	seen := map[string]bool{}
	for _, w := range words {
		if seen[w] {
			t.Errorf("слова не должны повторяться: %v", words)
		}
		seen[w] = true
	}
	// некорректный размер откатывается на 3
	if got := DrawWordOptions(0); len(got) != 3 {
		t.Errorf("n=0 откатывается на 3, получено %d", len(got))
	}
}

func TestSortByJoinOrder_Stable(t *testing.T) {
	players := makePlayers(4)
	// одинаковое время у двух игроков - порядок по id
	players[1].CreatedAt = players[2].CreatedAt

	shuffled := []*domain.Player{players[3], players[1], players[2], players[0]}
	sorted := SortByJoinOrder(shuffled)

	if sorted[0].ID != players[0].ID || sorted[3].ID != players[3].ID {
		t.Errorf("порядок по времени входа нарушен")
	}
	if players[1].ID < players[2].ID {
		if sorted[1].ID != players[1].ID {
			t.Errorf("при равном времени порядок по id")
		}
	} else if sorted[1].ID != players[2].ID {
		t.Errorf("при равном времени порядок по id")
	}
}
