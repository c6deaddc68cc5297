package repository

import (
	"context"
	"errors"
	"fmt"

	"partyroom/internal/domain"
	"partyroom/internal/feed"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PlayerRepository struct {
	db  *pgxpool.Pool
	bus *feed.Bus
}

func NewPlayerRepository(db *pgxpool.Pool, bus *feed.Bus) *PlayerRepository {
	return &PlayerRepository{db: db, bus: bus}
}

const playerColumns = `id, room_code, name, is_host, role, secret_word, vote, score, created_at`

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var p domain.Player
	err := row.Scan(&p.ID, &p.RoomCode, &p.Name, &p.IsHost, &p.Role,
		&p.SecretWord, &p.Vote, &p.Score, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlayerRepository) Insert(ctx context.Context, p *domain.Player) error {
	inserted, err := scanPlayer(r.db.QueryRow(ctx,
		`INSERT INTO players (id, room_code, name, is_host, role, secret_word, vote, score)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+playerColumns,
		p.ID, p.RoomCode, p.Name, p.IsHost, p.Role, p.SecretWord, p.Vote, p.Score,
	))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
	*p = *inserted

	r.bus.PublishChange(ctx, p.RoomCode, feed.Event{Type: feed.EventInsert, Table: "players", Row: p})
	return nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (*domain.Player, error) {
	p, err := scanPlayer(r.db.QueryRow(ctx,
		`SELECT `+playerColumns+` FROM players WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
	return p, nil
}

// игроки комнаты в детерминированном порядке хода
func (r *PlayerRepository) ListByRoom(ctx context.Context, code string) ([]*domain.Player, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+playerColumns+` FROM players
		 WHERE room_code = $1
		 ORDER BY created_at, id`, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
	defer rows.Close()

	var out []*domain.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStore, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// удаляет игрока. Ноль затронутых строк - ErrPermissionDenied:
// вызывающий обязан отличать «уже исчез» от «заблокирован политикой»,
// а не глотать это как no-op
func (r *PlayerRepository) Delete(ctx context.Context, id string) error {
	deleted, err := scanPlayer(r.db.QueryRow(ctx,
		`DELETE FROM players WHERE id = $1 RETURNING `+playerColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrPermissionDenied
		}
		return fmt.Errorf("%w: %v", domain.ErrStore, err)
	}

	r.bus.PublishChange(ctx, deleted.RoomCode, feed.Event{Type: feed.EventDelete, Table: "players", Row: deleted})
	return nil
}

// удаляет всех игроков комнаты (перед сносом самой комнаты)
func (r *PlayerRepository) DeleteByRoom(ctx context.Context, code string) error {
	rows, err := r.db.Query(ctx,
		`DELETE FROM players WHERE room_code = $1 RETURNING `+playerColumns, code)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
	defer rows.Close()

	var deleted []*domain.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrStore, err)
		}
		deleted = append(deleted, p)
	}

	for _, p := range deleted {
		r.bus.PublishChange(ctx, code, feed.Event{Type: feed.EventDelete, Table: "players", Row: p})
	}
	return nil
}

// узкие однополевые обновления с постфактум-публикацией строки

func (r *PlayerRepository) SetHost(ctx context.Context, id string, isHost bool) error {
	return r.updateField(ctx,
		`UPDATE players SET is_host = $1 WHERE id = $2 RETURNING `+playerColumns, isHost, id)
}

func (r *PlayerRepository) SetRoleSecret(ctx context.Context, id, role, secret string) error {
	p, err := scanPlayer(r.db.QueryRow(ctx,
		`UPDATE players SET role = $1, secret_word = $2, vote = '' WHERE id = $3 RETURNING `+playerColumns,
		role, secret, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrPermissionDenied
		}
		return fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
	r.bus.PublishChange(ctx, p.RoomCode, feed.Event{Type: feed.EventUpdate, Table: "players", Row: p})
	return nil
}

func (r *PlayerRepository) SetSecret(ctx context.Context, id, secret string) error {
	return r.updateField(ctx,
		`UPDATE players SET secret_word = $1 WHERE id = $2 RETURNING `+playerColumns, secret, id)
}

func (r *PlayerRepository) SetVote(ctx context.Context, id, vote string) error {
	return r.updateField(ctx,
		`UPDATE players SET vote = $1 WHERE id = $2 RETURNING `+playerColumns, vote, id)
}

// запись счёта абсолютным значением, не инкрементом: повторная или
// гоняющаяся запись того же результата безопасна
func (r *PlayerRepository) SetScore(ctx context.Context, id string, score int) error {
	return r.updateField(ctx,
		`UPDATE players SET score = $1 WHERE id = $2 RETURNING `+playerColumns, score, id)
}

func (r *PlayerRepository) updateField(ctx context.Context, query string, value interface{}, id string) error {
	p, err := scanPlayer(r.db.QueryRow(ctx, query, value, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrPermissionDenied
		}
		return fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
	r.bus.PublishChange(ctx, p.RoomCode, feed.Event{Type: feed.EventUpdate, Table: "players", Row: p})
	return nil
}

// сбрасывает игровое состояние всех игроков комнаты (роль, секрет,
// голос; счёт - по флагу) при возврате комнаты в лобби
func (r *PlayerRepository) ResetByRoom(ctx context.Context, code string, resetScores bool) error {
	query := `UPDATE players SET role = '', secret_word = '', vote = ''
		 WHERE room_code = $1 RETURNING ` + playerColumns
	if resetScores {
		query = `UPDATE players SET role = '', secret_word = '', vote = '', score = 0
		 WHERE room_code = $1 RETURNING ` + playerColumns
	}

	rows, err := r.db.Query(ctx, query, code)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
	defer rows.Close()

	var updated []*domain.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrStore, err)
		}
		updated = append(updated, p)
	}

	for _, p := range updated {
		r.bus.PublishChange(ctx, code, feed.Event{Type: feed.EventUpdate, Table: "players", Row: p})
	}
	return nil
}
