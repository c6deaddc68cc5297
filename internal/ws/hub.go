package ws

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"

	"partyroom/internal/feed"
	"partyroom/internal/repository"
)

// Hub держит по одному ретранслятору на комнату: ретранслятор
// подписан на Redis-каналы комнаты (change-feed + эфемерные) и
// раздаёт сообщения локальным сокетам. Сам hub состояния игры не
// хранит - источник истины всегда хранилище.

type Hub struct {
	mu     sync.RWMutex
	relays map[string]*relay

	Bus     *feed.Bus
	Rooms   *repository.RoomRepository
	Players *repository.PlayerRepository
}

func NewHub(bus *feed.Bus, rooms *repository.RoomRepository, players *repository.PlayerRepository) *Hub {
	return &Hub{
		relays:  make(map[string]*relay),
		Bus:     bus,
		Rooms:   rooms,
		Players: players,
	}
}

// один ретранслятор комнаты
type relay struct {
	code    string
	mu      sync.RWMutex
	clients map[string]*Client // playerID -> client
	cancel  context.CancelFunc
}

// Конверт исходящего сообщения: клиент различает авторитетный feed
// и эфемерные сигналы по имени канала.
type Envelope struct {
	Channel string          `json:"channel"` // feed / cast / strokes
	Data    json.RawMessage `json:"data"`
}

// подключает клиента к ретранслятору его комнаты, создавая
// ретранслятор при первом подключении. Повторное подключение того же
// игрока вытесняет старый сокет
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	r, ok := h.relays[c.RoomCode]
	if !ok {
		ctx, cancel := context.WithCancel(context.Background())
		r = &relay{
			code:    c.RoomCode,
			clients: make(map[string]*Client),
			cancel:  cancel,
		}
		h.relays[c.RoomCode] = r
		go h.runRelay(ctx, r)
	}
	h.mu.Unlock()

	r.mu.Lock()
	old := r.clients[c.PlayerID]
	r.clients[c.PlayerID] = c
	r.mu.Unlock()

	// вытесненный сокет закрываем уже без замка: Close идёт через
	// Unregister, которому нужны те же мьютексы
	if old != nil && old != c {
		log.Printf("Hub.Register: игрок=%s переподключился, закрываем старый сокет", c.PlayerID)
		old.Close()
	}
}

// отключает клиента; последний ушедший закрывает подписку комнаты
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	r, ok := h.relays[c.RoomCode]
	if !ok {
		return
	}

	r.mu.Lock()
	if current, ok := r.clients[c.PlayerID]; ok && current == c {
		delete(r.clients, c.PlayerID)
	}
	empty := len(r.clients) == 0
	r.mu.Unlock()

	if empty {
		r.cancel()
		delete(h.relays, c.RoomCode)
		log.Printf("Hub.Unregister: комната=%s осталась без сокетов, подписка закрыта", c.RoomCode)
	}
}

// качает сообщения из Redis-каналов комнаты в локальные сокеты
func (h *Hub) runRelay(ctx context.Context, r *relay) {
	pubsub := h.Bus.Subscribe(ctx, r.code)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}

			env := Envelope{
				Channel: channelKind(msg.Channel),
				Data:    json.RawMessage(msg.Payload),
			}
			payload, err := json.Marshal(env)
			if err != nil {
				continue
			}

			r.mu.RLock()
			for _, c := range r.clients {
				// неблокирующая отправка: переполненный клиент
				// теряет сообщение, а не стопорит комнату
				select {
				case c.Send <- payload:
				default:
					log.Printf("Hub.runRelay: комната=%s игрок=%s буфер переполнен, сообщение отброшено", r.code, c.PlayerID)
				}
			}
			r.mu.RUnlock()
		}
	}
}

func channelKind(channel string) string {
	switch {
	case strings.HasPrefix(channel, "feed:"):
		return "feed"
	case strings.HasPrefix(channel, "strokes:"):
		return "strokes"
	default:
		return "cast"
	}
}
