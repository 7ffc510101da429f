package memory

import (
	"sync"

	"github.com/qrave1/HotSeat/internal/domain/runtime"
)

// ConnectionRegistry хранит состояние живых соединений: имя, текущую комнату и медиа
type ConnectionRegistry interface {
	Register(connID string) runtime.Connection
	Get(connID string) (runtime.Connection, bool)

	// SetRoom записывает комнату и имя соединения и сбрасывает медиа к значениям по умолчанию
	SetRoom(connID, roomID, name string) (runtime.Connection, bool)
	ClearRoom(connID string)

	SetMediaState(connID string, media runtime.MediaState) (runtime.Connection, bool)

	// Unregister удаляет соединение и возвращает последнюю известную комнату
	Unregister(connID string) (string, bool)
	Count() int
}

type connectionRegistry struct {
	// conns хранит map[conn_id]*runtime.Connection
	conns map[string]*runtime.Connection

	mu sync.RWMutex
}

func NewConnectionRegistry() ConnectionRegistry {
	return &connectionRegistry{
		conns: make(map[string]*runtime.Connection, 10),
	}
}

func (r *connectionRegistry) Register(connID string) runtime.Connection {
	r.mu.Lock()
	defer r.mu.Unlock()

	conn := &runtime.Connection{
		ID:    connID,
		Name:  runtime.DefaultName(connID),
		Media: runtime.DefaultMediaState(),
	}

	r.conns[connID] = conn

	return *conn
}

func (r *connectionRegistry) Get(connID string) (runtime.Connection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conn, ok := r.conns[connID]
	if !ok {
		return runtime.Connection{}, false
	}

	return *conn, true
}

func (r *connectionRegistry) SetRoom(connID, roomID, name string) (runtime.Connection, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conn, ok := r.conns[connID]
	if !ok {
		return runtime.Connection{}, false
	}

	if name == "" {
		name = runtime.DefaultName(connID)
	}

	conn.RoomID = roomID
	conn.Name = name
	conn.Media = runtime.DefaultMediaState()

	return *conn, true
}

func (r *connectionRegistry) ClearRoom(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if conn, ok := r.conns[connID]; ok {
		conn.RoomID = ""
	}
}

func (r *connectionRegistry) SetMediaState(connID string, media runtime.MediaState) (runtime.Connection, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conn, ok := r.conns[connID]
	if !ok {
		return runtime.Connection{}, false
	}

	conn.Media = media

	return *conn, true
}

func (r *connectionRegistry) Unregister(connID string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conn, ok := r.conns[connID]
	if !ok {
		return "", false
	}

	delete(r.conns, connID)

	return conn.RoomID, true
}

func (r *connectionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.conns)
}
