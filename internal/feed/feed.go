package feed

import (
	"context"
	"encoding/json"

	"partyroom/internal/logger"

	"github.com/redis/go-redis/v9"
)

// Шина событий комнаты поверх Redis pub/sub. Две природы каналов:
// feed:<код> несёт события изменения строк хранилища (авторитетное
// состояние, клиент сводит его со снапшотом), cast:<код> и
// strokes:<код> - эфемерные сигналы (чат, индикатор набора, черновые
// выборы, штрихи рисунка), которые не переживают переподключение и
// никогда не несут состояние, нужное для корректности.

// Типы событий change-feed.
const (
	EventInsert = "INSERT"
	EventUpdate = "UPDATE"
	EventDelete = "DELETE"
)

// Событие изменения одной строки. Row - полная строка после
// изменения (для DELETE - последняя известная).
type Event struct {
	Type  string      `json:"type"`
	Table string      `json:"table"`
	Row   interface{} `json:"row"`
}

// Эфемерное сообщение broadcast-канала.
type Cast struct {
	Type string          `json:"type"`
	ID   string          `json:"id"`
	Data json.RawMessage `json:"data"`
}

type Bus struct {
	rdb *redis.Client
}

func NewBus(rdb *redis.Client) *Bus {
	return &Bus{rdb: rdb}
}

func feedChannel(code string) string    { return "feed:" + code }
func castChannel(code string) string    { return "cast:" + code }
func strokesChannel(code string) string { return "strokes:" + code }

// публикует событие изменения строки подписчикам комнаты.
// Доставка best-effort: хранилище остаётся источником истины,
// при переподключении клиент забирает полный снапшот.
func (b *Bus) PublishChange(ctx context.Context, roomCode string, ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		logger.Error("feed: не удалось сериализовать событие", "room", roomCode, "error", err)
		return
	}
	if err := b.rdb.Publish(ctx, feedChannel(roomCode), payload).Err(); err != nil {
		logger.Error("feed: не удалось опубликовать событие", "room", roomCode, "error", err)
	}
}

// пересылает эфемерное сообщение комнаты (чат, набор текста,
// черновые выборы ведущего)
func (b *Bus) PublishCast(ctx context.Context, roomCode string, payload []byte) {
	if err := b.rdb.Publish(ctx, castChannel(roomCode), payload).Err(); err != nil {
		logger.Debug("feed: cast не доставлен", "room", roomCode, "error", err)
	}
}

// отдельный канал для высокочастотных штрихов рисунка,
// чтобы они не толкались с остальными сигналами
func (b *Bus) PublishStrokes(ctx context.Context, roomCode string, payload []byte) {
	if err := b.rdb.Publish(ctx, strokesChannel(roomCode), payload).Err(); err != nil {
		logger.Debug("feed: штрих не доставлен", "room", roomCode, "error", err)
	}
}

// подписка на все каналы комнаты; закрытие PubSub снимает подписку
func (b *Bus) Subscribe(ctx context.Context, roomCode string) *redis.PubSub {
	return b.rdb.Subscribe(ctx,
		feedChannel(roomCode),
		castChannel(roomCode),
		strokesChannel(roomCode),
	)
}

// лёгкая проверка доступности шины
func (b *Bus) Ping(ctx context.Context) error {
	return b.rdb.Ping(ctx).Err()
}
