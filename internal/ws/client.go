package ws

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 30 * time.Second
	pingPeriod = 25 * time.Second

	maxMessageSize = 16 * 1024
)

type Client struct {
	PlayerID string
	RoomCode string
	Conn     *websocket.Conn
	Send     chan []byte

	Hub       *Hub
	closeOnce sync.Once
	Done      chan struct{}
}

func NewClient(playerID, roomCode string, conn *websocket.Conn, hub *Hub) *Client {
	return &Client{
		PlayerID: playerID,
		RoomCode: roomCode,
		Conn:     conn,
		Send:     make(chan []byte, 256),
		Hub:      hub,
		Done:     make(chan struct{}),
	}
}

func (c *Client) Run() {
	go c.writePump()

	c.Hub.Register(c)

	// снапшот авторитетного состояния сразу после подключения:
	// переподключившийся клиент восстанавливает комнату целиком,
	// дальше докатываются только события feed
	c.sendSnapshot()

	c.readPump()
}

// полный снимок комнаты и состава
func (c *Client) sendSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	room, err := c.Hub.Rooms.GetByCode(ctx, c.RoomCode)
	if err != nil {
		log.Printf("Client.sendSnapshot: комната=%s недоступна: %v", c.RoomCode, err)
		return
	}
	players, err := c.Hub.Players.ListByRoom(ctx, c.RoomCode)
	if err != nil {
		log.Printf("Client.sendSnapshot: игроки комнаты=%s недоступны: %v", c.RoomCode, err)
		return
	}

	snapshot, err := json.Marshal(map[string]interface{}{
		"type":    "snapshot",
		"room":    room,
		"players": players,
	})
	if err != nil {
		return
	}
	env, err := json.Marshal(Envelope{Channel: "feed", Data: snapshot})
	if err != nil {
		return
	}

	select {
	case c.Send <- env:
	case <-time.After(writeWait):
		log.Printf("Client.sendSnapshot: таймаут отправки снапшота игроку=%s", c.PlayerID)
	}
}

// входящие сообщения сокета - только эфемерные сигналы (чат, набор,
// черновые выборы, штрихи). Мутации состояния идут через HTTP,
// сокет их не принимает
func (c *Client) readPump() {
	defer c.Close()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Client.readPump: игрок=%s соединение оборвано: %v", c.PlayerID, err)
			}
			return
		}

		var msg struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if msg.Type == "stroke" {
			// штрихи идут отдельным каналом, чтобы не задавить
			// остальные сигналы частотой
			c.Hub.Bus.PublishStrokes(ctx, c.RoomCode, raw)
		} else {
			c.Hub.Bus.PublishCast(ctx, c.RoomCode, raw)
		}
		cancel()
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case <-c.Done:
			return
		case payload, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.Done)
		c.Hub.Unregister(c)
		if c.Conn != nil {
			c.Conn.Close()
		}
	})
}
