package memory

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/qrave1/HotSeat/internal/application/config"
	"github.com/qrave1/HotSeat/internal/application/constant"
	"github.com/qrave1/HotSeat/internal/application/metric"
)

// WebsocketConnectionRepository интерфейс для работы с активными WS соединениями в памяти.
// Запись не блокирует: сообщение кладется в очередь соединения, отдельная горутина пишет его в сокет.
type WebsocketConnectionRepository interface {
	Add(connID string, conn *websocket.Conn)
	Remove(connID string)

	// Write ставит payload в очередь соединения. false, если соединения нет или очередь переполнена.
	Write(connID string, payload any) bool
	Count() int
}

type wsClient struct {
	conn *websocket.Conn
	send chan []byte

	done      chan struct{}
	closeOnce sync.Once
}

func (c *wsClient) close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

type wsConnectionRepository struct {
	cfg config.WebSocketConfig

	// wsConns хранит map[conn_id]*wsClient
	wsConns map[string]*wsClient

	mu sync.RWMutex
}

func NewWSConnectionRepository(cfg config.WebSocketConfig) WebsocketConnectionRepository {
	return &wsConnectionRepository{
		cfg:     cfg,
		wsConns: make(map[string]*wsClient, 10),
	}
}

func (w *wsConnectionRepository) Add(connID string, conn *websocket.Conn) {
	client := &wsClient{
		conn: conn,
		send: make(chan []byte, w.cfg.SendBuffer),
		done: make(chan struct{}),
	}

	w.mu.Lock()
	if prev, exists := w.wsConns[connID]; exists {
		prev.close()
	} else {
		// Увеличиваем счетчик активных WS соединений
		metric.IncrementWSActiveConnections()
	}
	w.wsConns[connID] = client
	w.mu.Unlock()

	go w.writeLoop(connID, client)
}

func (w *wsConnectionRepository) Remove(connID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	// Проверяем, существует ли соединение перед удалением
	if client, exists := w.wsConns[connID]; exists {
		delete(w.wsConns, connID)
		client.close()

		// Уменьшаем счетчик активных WS соединений
		metric.DecrementWSActiveConnections()
	}
}

func (w *wsConnectionRepository) Write(connID string, payload any) bool {
	client, ok := w.getClient(connID)
	if !ok {
		return false
	}

	data, err := json.Marshal(payload)
	if err != nil {
		slog.Error(
			"marshal websocket payload",
			slog.Any(constant.Error, err),
			slog.String(constant.ConnID, connID),
		)
		return false
	}

	select {
	case <-client.done:
		return false
	default:
	}

	select {
	case client.send <- data:
		return true
	default:
		// Клиент не успевает читать, закрываем соединение
		slog.Warn("websocket send buffer is full, closing connection", slog.String(constant.ConnID, connID))
		metric.IncrementWSMessagesDropped(metric.DropReasonSlowClient)

		client.close()
		_ = client.conn.Close()

		return false
	}
}

func (w *wsConnectionRepository) Count() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.wsConns)
}

func (w *wsConnectionRepository) getClient(connID string) (*wsClient, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	client, ok := w.wsConns[connID]
	return client, ok
}

// writeLoop единственный писатель в сокет: сообщения из очереди и ping
func (w *wsConnectionRepository) writeLoop(connID string, client *wsClient) {
	ticker := time.NewTicker(w.cfg.PingPeriod)
	defer ticker.Stop()

	for {
		select {
		case data := <-client.send:
			_ = client.conn.SetWriteDeadline(time.Now().Add(w.cfg.WriteWait))

			if err := client.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				slog.Error(
					"write to websocket",
					slog.Any(constant.Error, err),
					slog.String(constant.ConnID, connID),
				)
				client.close()
				_ = client.conn.Close()
				return
			}

		case <-ticker.C:
			_ = client.conn.SetWriteDeadline(time.Now().Add(w.cfg.WriteWait))

			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				slog.Debug("ping failed", slog.Any(constant.Error, err), slog.String(constant.ConnID, connID))
				client.close()
				_ = client.conn.Close()
				return
			}

		case <-client.done:
			return
		}
	}
}
