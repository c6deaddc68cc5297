package ws

import (
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"partyroom/internal/feed"
)

func testHub() *Hub {
	// шина на недоступном адресе: подписка создаётся, сообщений нет
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	return NewHub(feed.NewBus(rdb), nil, nil)
}

// переподключение того же игрока вытесняет старый сокет и не вешает
// ретранслятор комнаты
func TestRegister_ReconnectEvictsOldClient(t *testing.T) {
	hub := testHub()

	old := NewClient("p1", "ABCD", nil, hub)
	hub.Register(old)

	next := NewClient("p1", "ABCD", nil, hub)
	done := make(chan struct{})
	go func() {
		hub.Register(next)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Register завис при переподключении")
	}

	select {
	case <-old.Done:
	default:
		t.Errorf("старый сокет должен быть закрыт")
	}

	hub.mu.RLock()
	r := hub.relays["ABCD"]
	hub.mu.RUnlock()
	if r == nil {
		t.Fatalf("ретранслятор комнаты пропал после переподключения")
	}
	r.mu.RLock()
	current := r.clients["p1"]
	r.mu.RUnlock()
	if current != next {
		t.Errorf("в ретрансляторе должен остаться новый сокет")
	}
}

// уход последнего клиента закрывает подписку комнаты; вытесненный
// сокет при этом не выносит живого
func TestUnregister_LastClientDropsRelay(t *testing.T) {
	hub := testHub()

	first := NewClient("p1", "WXYZ", nil, hub)
	hub.Register(first)

	second := NewClient("p1", "WXYZ", nil, hub)
	hub.Register(second)

	// Unregister вытесненного уже случился внутри Close - комната жива
	hub.mu.RLock()
	_, alive := hub.relays["WXYZ"]
	hub.mu.RUnlock()
	if !alive {
		t.Fatalf("комната не должна закрываться, пока новый сокет подключен")
	}

	second.Close()

	hub.mu.RLock()
	_, alive = hub.relays["WXYZ"]
	hub.mu.RUnlock()
	if alive {
		t.Errorf("последний ушедший должен закрыть подписку комнаты")
	}
}
