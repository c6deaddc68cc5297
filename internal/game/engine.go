package game

import (
	"sort"

	"partyroom/internal/domain"
)

// Движок режимов: по тегу режима выбирается стратегия, которая по
// составу комнаты раздаёт роли и секреты, готовит стартовый payload
// game_data и стартовую фазу. Стратегии не держат состояния - весь
// прогресс обязан восстанавливаться из game_data после переподключения.

// Параметры запуска, выбранные ведущим в лобби.
type Options struct {
	// подмножество тем для словесных режимов; пустой результат
	// фильтрации откатывается на полный список
	Themes []string
	// точность подсказки самозванца: none/low/medium
	HintLevel string
	// явный выбор режиссёра/экстрасенса; пустая строка - случайно
	ChosenID string
}

// Роль и секрет одного игрока.
type RoleSecret struct {
	Role   string
	Secret string
}

// Результат раздачи.
type Assignment struct {
	Roles        map[string]RoleSecret
	GameData     map[string]interface{}
	InitialPhase string
}

type Strategy interface {
	Mode() string
	MinPlayers() int
	Assign(players []*domain.Player, opts Options) (*Assignment, error)
}

// Реестр стратегий по тегу режима.
type Registry struct {
	strategies map[string]Strategy
}

func NewRegistry() *Registry {
	r := &Registry{strategies: make(map[string]Strategy)}
	for _, s := range []Strategy{
		&UndercoverStrategy{},
		&ClassicImposterStrategy{},
		&DirectorsCutStrategy{},
		&WavelengthStrategy{},
		&MindSyncStrategy{},
		&TimeBombStrategy{},
		&PictionaryStrategy{},
	} {
		r.strategies[s.Mode()] = s
	}
	return r
}

func (r *Registry) Get(mode string) (Strategy, error) {
	s, ok := r.strategies[mode]
	if !ok {
		return nil, domain.ErrUnknownMode
	}
	return s, nil
}

// раздаёт роли с проверкой минимального состава
func (r *Registry) Assign(mode string, players []*domain.Player, opts Options) (*Assignment, error) {
	s, err := r.Get(mode)
	if err != nil {
		return nil, err
	}
	if len(players) < s.MinPlayers() {
		return nil, domain.ErrInsufficientPlayers
	}
	return s.Assign(players, opts)
}

// детерминированный порядок ходов: created_at, при равенстве id
func SortByJoinOrder(players []*domain.Player) []*domain.Player {
	sorted := make([]*domain.Player, len(players))
	copy(sorted, players)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].ID < sorted[j].ID
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	return sorted
}
