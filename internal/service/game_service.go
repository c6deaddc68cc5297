package service

import (
	"context"
	"encoding/json"
	"errors"

	"partyroom/internal/domain"
	"partyroom/internal/game"
	"partyroom/internal/logger"
	"partyroom/internal/repository"
)

// Игровые операции: запуск режима, фазы, голоса, догадки, раскрытие
// результатов, сброс. Сервис - единственный писатель durable-состояния;
// клиенты только шлют намерения и наблюдают change-feed.

type GameService struct {
	rooms    *repository.RoomRepository
	players  *repository.PlayerRepository
	registry *game.Registry
}

func NewGameService(rooms *repository.RoomRepository, players *repository.PlayerRepository) *GameService {
	return &GameService{
		rooms:    rooms,
		players:  players,
		registry: game.NewRegistry(),
	}
}

// проверка ведущего для операций, гейтуемых на границе HTTP
func (s *GameService) RequireHost(ctx context.Context, code, actorID string) (*domain.Player, error) {
	return s.requireHost(ctx, code, actorID)
}

// проверяет, что действует ведущий указанной комнаты
func (s *GameService) requireHost(ctx context.Context, code, actorID string) (*domain.Player, error) {
	p, err := s.players.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if p.RoomCode != code || !p.IsHost {
		return nil, domain.ErrNotHost
	}
	return p, nil
}

func (s *GameService) requireMember(ctx context.Context, code, actorID string) (*domain.Player, error) {
	p, err := s.players.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if p.RoomCode != code {
		return nil, domain.ErrPermissionDenied
	}
	return p, nil
}

// запускает режим: раздаёт роли и секреты, пишет стартовый game_data
// и фазу. Статус PLAYING - последняя, самая весомая запись: если
// что-то упало раньше, комната остаётся в лобби
func (s *GameService) StartGame(ctx context.Context, code, actorID, mode string, opts game.Options) error {
	room, err := s.rooms.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if room.Status == domain.StatusPlaying {
		return domain.ErrAlreadyStarted
	}
	if _, err := s.requireHost(ctx, code, actorID); err != nil {
		return err
	}

	players, err := s.players.ListByRoom(ctx, code)
	if err != nil {
		return err
	}

	asg, err := s.registry.Assign(mode, players, opts)
	if err != nil {
		return err
	}

	for _, p := range players {
		rs := asg.Roles[p.ID]
		if err := s.players.SetRoleSecret(ctx, p.ID, rs.Role, rs.Secret); err != nil {
			return err
		}
	}

	if err := s.rooms.UpdateMode(ctx, code, mode); err != nil {
		return err
	}
	if err := s.writeGameData(ctx, code, asg.GameData); err != nil {
		return err
	}
	if err := s.rooms.UpdatePhase(ctx, code, asg.InitialPhase); err != nil {
		return err
	}
	if err := s.rooms.UpdateStatus(ctx, code, domain.StatusPlaying); err != nil {
		return err
	}

	logger.Info("игра запущена", "room", code, "mode", mode, "players", len(players))
	return nil
}

// переводит фазу. Повторная установка той же фазы - идемпотентный
// no-op; вход в results завершает комнату. Фазы с дедлайном может
// двигать любой участник, поэтому гейт здесь - членство, а не ведущий
func (s *GameService) UpdatePhase(ctx context.Context, code, actorID, phase string) error {
	room, err := s.rooms.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if _, err := s.requireMember(ctx, code, actorID); err != nil {
		return err
	}

	if !game.CanTransition(room.GameMode, room.CurrPhase, phase) {
		return domain.ErrBadPhase
	}

	if err := s.rooms.UpdatePhase(ctx, code, phase); err != nil {
		return err
	}
	if game.IsTerminal(phase) {
		return s.rooms.UpdateStatus(ctx, code, domain.StatusFinished)
	}
	return nil
}

// смена режима в лобби (черновой выбор летит по broadcast, сюда
// приходит только подтверждённый)
func (s *GameService) UpdateMode(ctx context.Context, code, actorID, mode string) error {
	room, err := s.rooms.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if room.Status == domain.StatusPlaying {
		return domain.ErrAlreadyStarted
	}
	if _, err := s.requireHost(ctx, code, actorID); err != nil {
		return err
	}
	if _, err := s.registry.Get(mode); err != nil {
		return err
	}
	return s.rooms.UpdateMode(ctx, code, mode)
}

// прямое обновление game_data (таймеры, победитель режиссёра и т.п.)
func (s *GameService) UpdateGameData(ctx context.Context, code, actorID string, data json.RawMessage) error {
	if _, err := s.requireMember(ctx, code, actorID); err != nil {
		return err
	}
	return s.rooms.UpdateGameData(ctx, code, data)
}

// голос на выбывание: в слот vote пишется id цели
func (s *GameService) CastVote(ctx context.Context, voterID, targetID string) error {
	voter, err := s.players.GetByID(ctx, voterID)
	if err != nil {
		return err
	}
	target, err := s.players.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target.RoomCode != voter.RoomCode {
		return domain.ErrPermissionDenied
	}
	return s.players.SetVote(ctx, voterID, targetID)
}

// свободный ответ mind-sync: текст дописывается в секрет под ключом
// "answer", факт ответа отмечается меткой ANSWERED в слоте vote.
// Когда метка есть у всех, раунд сам уходит в обсуждение
func (s *GameService) SubmitAnswer(ctx context.Context, playerID, answer string) error {
	player, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		return err
	}

	secret, err := domain.ParseMindSyncSecret(player.SecretWord)
	if err != nil {
		// повреждённый секрет деградирует до заглушки, не падаем
		secret = domain.MindSyncSecret{Question: domain.SecretPlaceholder}
	}
	secret.Answer = answer

	if err := s.players.SetSecret(ctx, playerID, domain.MarshalSecret(secret)); err != nil {
		return err
	}
	if err := s.players.SetVote(ctx, playerID, domain.VoteStatusAnswered); err != nil {
		return err
	}

	all, err := s.players.ListByRoom(ctx, player.RoomCode)
	if err != nil {
		return err
	}
	for _, p := range all {
		if !domain.ParseVoteSlot(p.Vote).HasStatus(domain.VoteStatusAnswered) {
			return nil
		}
	}
	// все ответили - автопереход
	return s.UpdatePhase(ctx, player.RoomCode, playerID, domain.PhaseDiscussion)
}

// числовая позиция отгадчика wavelength: пишется в секрет,
// факт ответа - меткой в слоте vote
func (s *GameService) SubmitPosition(ctx context.Context, playerID string, position int) error {
	player, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		return err
	}

	secret, err := domain.ParseWavelengthSecret(player.SecretWord)
	if err != nil {
		secret = domain.WavelengthSecret{}
	}
	secret.Guess = &position

	if err := s.players.SetSecret(ctx, playerID, domain.MarshalSecret(secret)); err != nil {
		return err
	}
	return s.players.SetVote(ctx, playerID, domain.VoteStatusAnswered)
}

// текстовая наводка экстрасенса: пишется в game_data, после чего
// открывается фаза догадок
func (s *GameService) SubmitClue(ctx context.Context, playerID, clue string) error {
	player, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		return err
	}
	if player.Role != domain.RolePsychic {
		return domain.ErrPermissionDenied
	}

	if err := s.mergeGameData(ctx, player.RoomCode, map[string]interface{}{"clue": clue}); err != nil {
		return err
	}
	return s.UpdatePhase(ctx, player.RoomCode, playerID, domain.PhaseGuessing)
}

// выбор слова художником pictionary
func (s *GameService) ChooseWord(ctx context.Context, playerID, word string) error {
	player, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		return err
	}
	if player.Role != domain.RoleDrawer {
		return domain.ErrPermissionDenied
	}

	if err := s.players.SetSecret(ctx, playerID, word); err != nil {
		return err
	}
	return s.UpdatePhase(ctx, player.RoomCode, playerID, domain.PhaseDrawing)
}

// выбор фильма режиссёром: зрители получают «???» первыми,
// payload режиссёра - последняя, самая весомая запись
func (s *GameService) SubmitMovie(ctx context.Context, playerID string, movie domain.DirectorSecret) error {
	player, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		return err
	}
	if player.Role != domain.RoleDirector {
		return domain.ErrPermissionDenied
	}

	all, err := s.players.ListByRoom(ctx, player.RoomCode)
	if err != nil {
		return err
	}
	for _, p := range all {
		if p.ID == playerID {
			continue
		}
		if err := s.players.SetSecret(ctx, p.ID, domain.SecretPlaceholder); err != nil {
			return err
		}
	}

	if err := s.players.SetSecret(ctx, playerID, domain.MarshalSecret(movie)); err != nil {
		return err
	}
	return s.UpdatePhase(ctx, player.RoomCode, playerID, domain.PhaseGuessing)
}

// Вердикт свободной догадки для интерфейса.
type GuessResult struct {
	Verdict string `json:"verdict"` // correct / close / wrong
	Points  int    `json:"points"`
}

// свободная догадка: в pictionary - нечёткое сравнение со словом
// художника (очко за точное попадание), в directors-cut - строгое
// совпадение названия фильма без очков (победителя назначает режиссёр)
func (s *GameService) SubmitGuess(ctx context.Context, playerID, guess string) (*GuessResult, error) {
	player, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	room, err := s.rooms.GetByCode(ctx, player.RoomCode)
	if err != nil {
		return nil, err
	}

	switch room.GameMode {
	case domain.ModePictionary:
		return s.resolveDrawGuess(ctx, room, player, guess)
	case domain.ModeDirectorsCut:
		return s.resolveMovieGuess(ctx, room, player, guess)
	default:
		return nil, domain.ErrUnknownMode
	}
}

func (s *GameService) resolveDrawGuess(ctx context.Context, room *domain.Room, player *domain.Player, guess string) (*GuessResult, error) {
	data, err := room.GameDataMap()
	if err != nil {
		return nil, err
	}
	drawerID, _ := data["drawerId"].(string)
	if drawerID == "" || drawerID == player.ID {
		return nil, domain.ErrPermissionDenied
	}

	drawer, err := s.players.GetByID(ctx, drawerID)
	if err != nil {
		return nil, err
	}
	if drawer.SecretWord == domain.SecretWaiting || drawer.SecretWord == "" {
		return &GuessResult{Verdict: "wrong"}, nil
	}

	switch game.MatchGuess(drawer.SecretWord, guess) {
	case game.GuessCorrect:
		// уже угадавший не фармит очки повторными догадками
		if domain.ParseVoteSlot(player.Vote).HasStatus(domain.VoteStatusCorrect) {
			return &GuessResult{Verdict: "correct"}, nil
		}
		if err := s.players.SetVote(ctx, player.ID, domain.VoteStatusCorrect); err != nil {
			return nil, err
		}
		if err := s.players.SetScore(ctx, player.ID, player.Score+1); err != nil {
			return nil, err
		}
		return &GuessResult{Verdict: "correct", Points: 1}, nil
	case game.GuessClose:
		return &GuessResult{Verdict: "close"}, nil
	default:
		return &GuessResult{Verdict: "wrong"}, nil
	}
}

func (s *GameService) resolveMovieGuess(ctx context.Context, room *domain.Room, player *domain.Player, guess string) (*GuessResult, error) {
	data, err := room.GameDataMap()
	if err != nil {
		return nil, err
	}
	directorID, _ := data["directorId"].(string)
	if directorID == "" || directorID == player.ID {
		return nil, domain.ErrPermissionDenied
	}

	director, err := s.players.GetByID(ctx, directorID)
	if err != nil {
		return nil, err
	}
	movie, err := domain.ParseDirectorSecret(director.SecretWord)
	if err != nil {
		// фильм ещё не выбран или payload битый - догадка просто мимо
		return &GuessResult{Verdict: "wrong"}, nil
	}

	if game.MatchMovie(movie.Title, guess) {
		if err := s.players.SetVote(ctx, player.ID, domain.VoteStatusCorrect); err != nil {
			return nil, err
		}
		return &GuessResult{Verdict: "correct"}, nil
	}
	return &GuessResult{Verdict: "wrong"}, nil
}

// конец хода pictionary: следующий художник по порядку входа, после
// последнего круга - results. Счётчики живут только в game_data
func (s *GameService) NextTurn(ctx context.Context, code, actorID string) error {
	room, err := s.rooms.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if _, err := s.requireMember(ctx, code, actorID); err != nil {
		return err
	}

	data, err := room.GameDataMap()
	if err != nil {
		data = map[string]interface{}{}
	}
	round := intFromData(data, "round", 1)
	turnIndex := intFromData(data, "turnIndex", 0)

	players, err := s.players.ListByRoom(ctx, code)
	if err != nil {
		return err
	}
	ordered := game.SortByJoinOrder(players)

	turnIndex++
	if turnIndex >= len(ordered) {
		turnIndex = 0
		round++
	}

	if round > game.PictionaryRounds {
		if err := s.rooms.UpdatePhase(ctx, code, domain.PhaseResults); err != nil {
			return err
		}
		return s.rooms.UpdateStatus(ctx, code, domain.StatusFinished)
	}

	drawer := ordered[turnIndex]
	for _, p := range ordered {
		role := domain.RoleGuesser
		secret := ""
		if p.ID == drawer.ID {
			role = domain.RoleDrawer
			secret = domain.SecretWaiting
		}
		if err := s.players.SetRoleSecret(ctx, p.ID, role, secret); err != nil {
			return err
		}
	}

	if err := s.writeGameData(ctx, code, map[string]interface{}{
		"round":        round,
		"turnIndex":    turnIndex,
		"drawerId":     drawer.ID,
		"totalPlayers": len(ordered),
	}); err != nil {
		return err
	}
	return s.rooms.UpdatePhase(ctx, code, domain.PhaseSelectWord)
}

// Итог раунда для интерфейса и game_data.
type RoundResult struct {
	Caught     bool           `json:"caught,omitempty"`
	MinorityID string         `json:"minority_id,omitempty"`
	WinnerID   string         `json:"winner_id,omitempty"`
	Awards     map[string]int `json:"awards,omitempty"`
}

// раскрывает результаты раунда и начисляет очки по правилам режима.
// Итог дублируется в game_data, фаза и статус пишутся последними
func (s *GameService) RevealResults(ctx context.Context, code, actorID, winnerID string) (*RoundResult, error) {
	room, err := s.rooms.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if _, err := s.requireMember(ctx, code, actorID); err != nil {
		return nil, err
	}

	players, err := s.players.ListByRoom(ctx, code)
	if err != nil {
		return nil, err
	}

	result := &RoundResult{Awards: map[string]int{}}

	switch room.GameMode {
	case domain.ModeUndercoverWord:
		s.resolveElimination(players, domain.RoleImposter, result)
	case domain.ModeClassicImposter:
		s.resolveElimination(players, domain.RoleUndercover, result)
	case domain.ModeMindSync:
		s.resolveElimination(players, domain.RoleOutlier, result)
	case domain.ModeWavelength:
		if err := s.resolveWavelength(room, players, result); err != nil {
			return nil, err
		}
	case domain.ModeDirectorsCut:
		s.resolveDirector(room, players, winnerID, result)
	case domain.ModePictionary, domain.ModeTimeBomb:
		// очки уже начислены по ходу игры / счёта нет
	default:
		return nil, domain.ErrUnknownMode
	}

	for _, p := range players {
		delta, ok := result.Awards[p.ID]
		if !ok || delta == 0 {
			continue
		}
		if err := s.players.SetScore(ctx, p.ID, p.Score+delta); err != nil {
			return nil, err
		}
	}

	if err := s.mergeGameData(ctx, code, map[string]interface{}{"result": result}); err != nil {
		return nil, err
	}
	if err := s.rooms.UpdatePhase(ctx, code, domain.PhaseResults); err != nil {
		return nil, err
	}
	if err := s.rooms.UpdateStatus(ctx, code, domain.StatusFinished); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *GameService) resolveElimination(players []*domain.Player, minorityRole string, result *RoundResult) {
	minority := game.FindByRole(players, minorityRole)
	caught, awards := game.ResolveElimination(players, minority)
	result.Caught = caught
	if minority != nil {
		result.MinorityID = minority.ID
	}
	for id, n := range awards {
		result.Awards[id] = n
	}
}

func (s *GameService) resolveWavelength(room *domain.Room, players []*domain.Player, result *RoundResult) error {
	data, err := room.GameDataMap()
	if err != nil {
		return err
	}
	target := intFromData(data, "target", -1)
	psychicID, _ := data["psychicId"].(string)
	if target < 0 || psychicID == "" {
		return domain.ErrMalformedPayload
	}

	guesses := map[string]int{}
	for _, p := range players {
		if p.Role != domain.RoleGuesser {
			continue
		}
		secret, err := domain.ParseWavelengthSecret(p.SecretWord)
		if err != nil || secret.Guess == nil {
			continue
		}
		guesses[p.ID] = *secret.Guess
	}

	for id, n := range game.ResolveWavelength(target, guesses, psychicID) {
		result.Awards[id] = n
	}
	return nil
}

// победа в directors-cut: назначенный режиссёром игрок, иначе -
// сам режиссёр
func (s *GameService) resolveDirector(room *domain.Room, players []*domain.Player, winnerID string, result *RoundResult) {
	for _, p := range players {
		if winnerID != "" && p.ID == winnerID {
			result.WinnerID = winnerID
			result.Awards[winnerID] = 1
			return
		}
	}
	// победитель не назначен или не из этой комнаты - очко режиссёру
	if director := game.FindByRole(players, domain.RoleDirector); director != nil {
		result.WinnerID = director.ID
		result.Awards[director.ID] = 1
	}
}

// возвращает комнату в лобби: сброс игроков, затем очистка данных
// игры, статус LOBBY - последним
func (s *GameService) ResetRoom(ctx context.Context, code, actorID string, resetScores bool) error {
	if _, err := s.requireHost(ctx, code, actorID); err != nil {
		return err
	}

	if err := s.players.ResetByRoom(ctx, code, resetScores); err != nil {
		return err
	}
	if err := s.rooms.UpdateGameData(ctx, code, nil); err != nil {
		return err
	}
	if err := s.rooms.UpdatePhase(ctx, code, ""); err != nil {
		return err
	}
	return s.rooms.UpdateStatus(ctx, code, domain.StatusLobby)
}

func (s *GameService) writeGameData(ctx context.Context, code string, data map[string]interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return s.rooms.UpdateGameData(ctx, code, raw)
}

// дочитывает текущий game_data и дописывает в него ключи
func (s *GameService) mergeGameData(ctx context.Context, code string, patch map[string]interface{}) error {
	room, err := s.rooms.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	data, err := room.GameDataMap()
	if err != nil && !errors.Is(err, domain.ErrMalformedPayload) {
		return err
	}
	for k, v := range patch {
		data[k] = v
	}
	return s.writeGameData(ctx, code, data)
}

// числа из JSON приходят как float64
func intFromData(data map[string]interface{}, key string, fallback int) int {
	if v, ok := data[key].(float64); ok {
		return int(v)
	}
	if v, ok := data[key].(int); ok {
		return v
	}
	return fallback
}
