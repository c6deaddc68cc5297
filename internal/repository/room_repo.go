package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"partyroom/internal/domain"
	"partyroom/internal/feed"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomRepository struct {
	db  *pgxpool.Pool
	bus *feed.Bus
}

func NewRoomRepository(db *pgxpool.Pool, bus *feed.Bus) *RoomRepository {
	return &RoomRepository{db: db, bus: bus}
}

const roomColumns = `code, status, game_mode, curr_phase, COALESCE(game_data, 'null'::jsonb), created_at`

func scanRoom(row pgx.Row) (*domain.Room, error) {
	var r domain.Room
	var gameData []byte
	err := row.Scan(&r.Code, &r.Status, &r.GameMode, &r.CurrPhase, &gameData, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	if string(gameData) != "null" {
		r.GameData = json.RawMessage(gameData)
	}
	return &r, nil
}

// создаёт комнату; конфликт кода всплывает как ошибка хранилища
func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	created, err := scanRoom(r.db.QueryRow(ctx,
		`INSERT INTO rooms (code, status, game_mode, curr_phase, game_data)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+roomColumns,
		room.Code, room.Status, room.GameMode, room.CurrPhase, nullableJSON(room.GameData),
	))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
	*room = *created

	r.bus.PublishChange(ctx, room.Code, feed.Event{Type: feed.EventInsert, Table: "rooms", Row: room})
	return nil
}

func (r *RoomRepository) GetByCode(ctx context.Context, code string) (*domain.Room, error) {
	room, err := scanRoom(r.db.QueryRow(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE code = $1`, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
	return room, nil
}

// узкие однополевые обновления: каждая запись атомарна сама по себе,
// повторная запись того же значения безопасна

func (r *RoomRepository) UpdateStatus(ctx context.Context, code string, status domain.RoomStatus) error {
	return r.updateField(ctx, code, `UPDATE rooms SET status = $1 WHERE code = $2 RETURNING `+roomColumns, status)
}

func (r *RoomRepository) UpdatePhase(ctx context.Context, code, phase string) error {
	return r.updateField(ctx, code, `UPDATE rooms SET curr_phase = $1 WHERE code = $2 RETURNING `+roomColumns, phase)
}

func (r *RoomRepository) UpdateMode(ctx context.Context, code, mode string) error {
	return r.updateField(ctx, code, `UPDATE rooms SET game_mode = $1 WHERE code = $2 RETURNING `+roomColumns, mode)
}

func (r *RoomRepository) UpdateGameData(ctx context.Context, code string, data json.RawMessage) error {
	return r.updateField(ctx, code, `UPDATE rooms SET game_data = $1 WHERE code = $2 RETURNING `+roomColumns, nullableJSON(data))
}

func (r *RoomRepository) updateField(ctx context.Context, code, query string, value interface{}) error {
	room, err := scanRoom(r.db.QueryRow(ctx, query, value, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("%w: %v", domain.ErrStore, err)
	}

	r.bus.PublishChange(ctx, code, feed.Event{Type: feed.EventUpdate, Table: "rooms", Row: room})
	return nil
}

// удаляет комнату; игроков вызывающий удаляет раньше, чтобы не
// полагаться на каскадные удаления хранилища
func (r *RoomRepository) Delete(ctx context.Context, code string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPermissionDenied
	}

	r.bus.PublishChange(ctx, code, feed.Event{
		Type:  feed.EventDelete,
		Table: "rooms",
		Row:   map[string]string{"code": code},
	})
	return nil
}

func nullableJSON(data json.RawMessage) interface{} {
	if len(data) == 0 {
		return nil
	}
	return []byte(data)
}
