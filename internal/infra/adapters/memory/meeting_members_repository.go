package memory

import (
	"sync"
)

// MeetingMembersRepository хранит группы рассылки встреч (отдельно от комнат сигналинга)
type MeetingMembersRepository interface {
	Join(roomID, connID string)
	Leave(roomID, connID string)
	Members(roomID string) []string

	// LeaveAll убирает соединение из всех встреч и возвращает их id
	LeaveAll(connID string) []string
}

type meetingMembersRepository struct {
	members map[string]map[string]struct{}

	// connRooms - обратный индекс conn_id -> комнаты встреч
	connRooms map[string]map[string]struct{}

	mu sync.RWMutex
}

func NewMeetingMembersRepository() MeetingMembersRepository {
	return &meetingMembersRepository{
		members:   make(map[string]map[string]struct{}),
		connRooms: make(map[string]map[string]struct{}),
	}
}

func (r *meetingMembersRepository) Join(roomID, connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.members[roomID]; !ok {
		r.members[roomID] = make(map[string]struct{})
	}
	r.members[roomID][connID] = struct{}{}

	if _, ok := r.connRooms[connID]; !ok {
		r.connRooms[connID] = make(map[string]struct{})
	}
	r.connRooms[connID][roomID] = struct{}{}
}

func (r *meetingMembersRepository) Leave(roomID, connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.leave(roomID, connID)
}

func (r *meetingMembersRepository) leave(roomID, connID string) {
	if members, ok := r.members[roomID]; ok {
		delete(members, connID)

		if len(members) == 0 {
			delete(r.members, roomID)
		}
	}

	if rooms, ok := r.connRooms[connID]; ok {
		delete(rooms, roomID)

		if len(rooms) == 0 {
			delete(r.connRooms, connID)
		}
	}
}

func (r *meetingMembersRepository) Members(roomID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := make([]string, 0, len(r.members[roomID]))
	for connID := range r.members[roomID] {
		members = append(members, connID)
	}

	return members
}

func (r *meetingMembersRepository) LeaveAll(connID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	rooms := make([]string, 0, len(r.connRooms[connID]))
	for roomID := range r.connRooms[connID] {
		rooms = append(rooms, roomID)
	}

	for _, roomID := range rooms {
		r.leave(roomID, connID)
	}

	return rooms
}
