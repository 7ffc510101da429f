package memory

import (
	"sort"
	"sync"
)

// RoomDirectory хранит членство в комнатах сигналинга.
// Комната создается при первом входе и удаляется, когда уходит последний участник.
type RoomDirectory interface {
	Add(roomID, connID string) (created bool)
	Remove(roomID, connID string) (removed, deleted bool)

	// Members возвращает участников в порядке входа
	Members(roomID string) []string
	Contains(roomID, connID string) bool
	RoomCount() int
}

type roomDirectory struct {
	// rooms хранит map[room_id]map[conn_id]порядковый номер входа
	rooms map[string]map[string]uint64
	seq   uint64

	mu sync.RWMutex
}

func NewRoomDirectory() RoomDirectory {
	return &roomDirectory{
		rooms: make(map[string]map[string]uint64),
	}
}

func (d *roomDirectory) Add(roomID, connID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	members, ok := d.rooms[roomID]
	if !ok {
		members = make(map[string]uint64)
		d.rooms[roomID] = members
	}

	if _, exists := members[connID]; !exists {
		d.seq++
		members[connID] = d.seq
	}

	return !ok
}

func (d *roomDirectory) Remove(roomID, connID string) (bool, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	members, ok := d.rooms[roomID]
	if !ok {
		return false, false
	}

	if _, exists := members[connID]; !exists {
		return false, false
	}

	delete(members, connID)

	if len(members) == 0 {
		delete(d.rooms, roomID)
		return true, true
	}

	return true, false
}

func (d *roomDirectory) Members(roomID string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	members := d.rooms[roomID]

	ids := make([]string, 0, len(members))
	for connID := range members {
		ids = append(ids, connID)
	}

	sort.Slice(ids, func(i, j int) bool {
		return members[ids[i]] < members[ids[j]]
	})

	return ids
}

func (d *roomDirectory) Contains(roomID, connID string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.rooms[roomID][connID]
	return ok
}

func (d *roomDirectory) RoomCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.rooms)
}
