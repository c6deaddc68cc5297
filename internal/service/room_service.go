package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"partyroom/internal/domain"
	"partyroom/internal/feed"
	"partyroom/internal/game"
	"partyroom/internal/logger"
	"partyroom/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Жизненный цикл комнаты и состава: создание, вход, выход,
// миграция ведущего, снос.

type RoomService struct {
	db       *pgxpool.Pool
	bus      *feed.Bus
	rooms    *repository.RoomRepository
	players  *repository.PlayerRepository
	registry *game.Registry
}

func NewRoomService(db *pgxpool.Pool, bus *feed.Bus, rooms *repository.RoomRepository, players *repository.PlayerRepository) *RoomService {
	return &RoomService{db: db, bus: bus, rooms: rooms, players: players, registry: game.NewRegistry()}
}

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// 4 случайные буквы A-Z. Петли повторов при коллизии нет - при
// крошечном масштабе риск принят, дубль кода всплывёт ошибкой
// вставки по первичному ключу
func generateRoomCode() string {
	b := make([]byte, 4)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(b)
}

// создаёт комнату в лобби с ведущим внутри; возвращает также
// сессионный токен ведущего
func (s *RoomService) CreateRoom(ctx context.Context, hostName, mode string) (*domain.Room, *domain.Player, string, error) {
	hostName = strings.TrimSpace(hostName)
	if hostName == "" {
		return nil, nil, "", domain.ErrEmptyName
	}
	// режим можно выбрать и позже в лобби, но опечатка всплывает
	// сразу, а не при запуске игры
	if mode != "" {
		if _, err := s.registry.Get(mode); err != nil {
			return nil, nil, "", err
		}
	}

	room := &domain.Room{
		Code:     generateRoomCode(),
		Status:   domain.StatusLobby,
		GameMode: mode,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, nil, "", err
	}

	host := &domain.Player{
		ID:       uuid.NewString(),
		RoomCode: room.Code,
		Name:     hostName,
		IsHost:   true,
	}
	if err := s.players.Insert(ctx, host); err != nil {
		return nil, nil, "", err
	}

	token, err := IssueRoomToken(host.ID, room.Code)
	if err != nil {
		return nil, nil, "", err
	}

	logger.Info("комната создана", "code", room.Code, "host", host.Name)
	return room, host, token, nil
}

// вход в комнату: комната должна существовать, игра не должна идти,
// имя должно быть свободно (без учёта регистра и пробелов)
func (s *RoomService) JoinRoom(ctx context.Context, name, code string) (*domain.Room, *domain.Player, string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	room, err := s.rooms.GetByCode(ctx, code)
	if err != nil {
		return nil, nil, "", err
	}
	if room.Status == domain.StatusPlaying {
		return nil, nil, "", domain.ErrAlreadyStarted
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil, "", domain.ErrEmptyName
	}

	existing, err := s.players.ListByRoom(ctx, code)
	if err != nil {
		return nil, nil, "", err
	}
	for _, p := range existing {
		if domain.SameName(p.Name, name) {
			return nil, nil, "", domain.ErrNameTaken
		}
	}

	player := &domain.Player{
		ID:       uuid.NewString(),
		RoomCode: code,
		Name:     name,
	}
	if err := s.players.Insert(ctx, player); err != nil {
		return nil, nil, "", err
	}

	token, err := IssueRoomToken(player.ID, code)
	if err != nil {
		return nil, nil, "", err
	}

	return room, player, token, nil
}

// выход игрока. Если уходит ведущий - статус мигрирует первому
// оставшемуся ДО удаления строки ведущего; если никого не осталось,
// комната сносится целиком
func (s *RoomService) LeaveRoom(ctx context.Context, playerID string) error {
	player, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// строки уже нет: тот же сигнал, что и ноль
			// затронутых строк при удалении
			return domain.ErrPermissionDenied
		}
		return err
	}

	if !player.IsHost {
		return s.players.Delete(ctx, playerID)
	}

	all, err := s.players.ListByRoom(ctx, player.RoomCode)
	if err != nil {
		return err
	}

	var successor *domain.Player
	for _, p := range all {
		if p.ID != playerID {
			successor = p
			break
		}
	}

	if successor == nil {
		// ведущий был последним - комнату сносим целиком
		return s.DeleteRoom(ctx, player.RoomCode)
	}

	if err := s.players.SetHost(ctx, successor.ID, true); err != nil {
		return err
	}
	logger.Info("ведущий мигрировал", "room", player.RoomCode, "to", successor.Name)

	return s.players.Delete(ctx, playerID)
}

// сносит комнату: сначала игроки, затем сама комната, чтобы не
// полагаться на каскадные удаления хранилища
func (s *RoomService) DeleteRoom(ctx context.Context, code string) error {
	if err := s.players.DeleteByRoom(ctx, code); err != nil {
		return err
	}
	return s.rooms.Delete(ctx, code)
}

// проверка передачи: действует именно ведущий, приёмник - игрок
// той же комнаты
func canTransferHost(actor, next *domain.Player) error {
	if !actor.IsHost {
		return domain.ErrNotHost
	}
	if next.RoomCode != actor.RoomCode {
		return domain.ErrPermissionDenied
	}
	return nil
}

// передаёт статус ведущего: два последовательных одностроковых
// обновления. Если первое упало, второе не выполняется -
// двух ведущих не появится
func (s *RoomService) TransferHost(ctx context.Context, oldHostID, newHostID string) error {
	actor, err := s.players.GetByID(ctx, oldHostID)
	if err != nil {
		return err
	}
	next, err := s.players.GetByID(ctx, newHostID)
	if err != nil {
		return err
	}
	if err := canTransferHost(actor, next); err != nil {
		return err
	}
	if next.ID == actor.ID {
		return nil
	}

	if err := s.players.SetHost(ctx, oldHostID, false); err != nil {
		return err
	}
	return s.players.SetHost(ctx, newHostID, true)
}

// лёгкая проверка доступности хранилища и шины событий
func (s *RoomService) CheckConnection(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		return err
	}
	return s.bus.Ping(ctx)
}

// периодически удаляет брошенные комнаты: пустые и доигранные,
// старше суток
func (s *RoomService) StartCleanup() {
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			s.cleanupStaleRooms()
		}
	}()
}

func (s *RoomService) cleanupStaleRooms() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	rows, err := s.db.Query(ctx,
		`SELECT r.code FROM rooms r
		 WHERE r.created_at < now() - interval '24 hours'
		    OR (r.status = 'FINISHED' AND NOT EXISTS (
		        SELECT 1 FROM players p WHERE p.room_code = r.code))`)
	if err != nil {
		logger.Error("очистка комнат: запрос не удался", "error", err)
		return
	}
	defer rows.Close()

	var stale []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			continue
		}
		stale = append(stale, code)
	}

	for _, code := range stale {
		if err := s.DeleteRoom(ctx, code); err != nil {
			logger.Error("очистка комнат: не удалось удалить", "room", code, "error", err)
			continue
		}
		logger.Info("удалена устаревшая комната", "room", code)
	}
}
