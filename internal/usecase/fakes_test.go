package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/qrave1/HotSeat/internal/domain/events"
	"github.com/qrave1/HotSeat/internal/domain/models"
	"github.com/qrave1/HotSeat/internal/infra/adapters/postgres/repository"
)

type sentFrame struct {
	connID   string
	envelope events.Envelope
}

// fakeWS записывает все исходящие сообщения в общем порядке
type fakeWS struct {
	mu     sync.Mutex
	frames []sentFrame
	gone   map[string]bool
}

func newFakeWS() *fakeWS {
	return &fakeWS{gone: make(map[string]bool)}
}

func (f *fakeWS) Add(string, *websocket.Conn) {}

func (f *fakeWS) Remove(connID string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.gone[connID] = true
}

func (f *fakeWS) Write(connID string, payload any) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.gone[connID] {
		return false
	}

	f.frames = append(f.frames, sentFrame{connID: connID, envelope: payload.(events.Envelope)})
	return true
}

func (f *fakeWS) Count() int { return 0 }

func (f *fakeWS) all() []sentFrame {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]sentFrame(nil), f.frames...)
}

// to возвращает сообщения для connID, опционально только указанного типа
func (f *fakeWS) to(connID string, messageType string) []events.Envelope {
	var out []events.Envelope
	for _, fr := range f.all() {
		if fr.connID != connID {
			continue
		}
		if messageType != "" && fr.envelope.Type != messageType {
			continue
		}
		out = append(out, fr.envelope)
	}

	return out
}

func (f *fakeWS) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.frames = nil
}

type fakeMeetingRepo struct {
	mu       sync.Mutex
	byRoom   map[string]*models.Meeting
	nextID   int64
	getErr   error
	updErr   error
	updCalls int
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{byRoom: make(map[string]*models.Meeting)}
}

func (r *fakeMeetingRepo) Create(_ context.Context, m *models.Meeting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	m.ID = r.nextID
	cp := *m
	r.byRoom[m.RoomID] = &cp

	return nil
}

func (r *fakeMeetingRepo) GetByID(_ context.Context, id int64) (*models.Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.byRoom {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}

	return nil, repository.ErrNotFound
}

func (r *fakeMeetingRepo) GetByRoomID(_ context.Context, roomID string) (*models.Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.getErr != nil {
		return nil, r.getErr
	}

	m, ok := r.byRoom[roomID]
	if !ok {
		return nil, repository.ErrNotFound
	}

	cp := *m
	return &cp, nil
}

func (r *fakeMeetingRepo) UpdatePhase(_ context.Context, id int64, phase models.Phase, startedAt time.Time) (*models.Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.updCalls++
	if r.updErr != nil {
		return nil, r.updErr
	}

	for _, m := range r.byRoom {
		if m.ID == id {
			m.CurrentPhase = phase
			m.PhaseStartTime = startedAt
			cp := *m
			return &cp, nil
		}
	}

	return nil, repository.ErrNotFound
}

type fakeParticipantRepo struct {
	mu     sync.Mutex
	items  map[int64]*models.Participant
	nextID int64
	updErr error
}

func newFakeParticipantRepo() *fakeParticipantRepo {
	return &fakeParticipantRepo{items: make(map[int64]*models.Participant)}
}

func (r *fakeParticipantRepo) Create(_ context.Context, p *models.Participant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p.ID = r.nextID
	cp := *p
	r.items[p.ID] = &cp

	return nil
}

func (r *fakeParticipantRepo) ListByMeeting(_ context.Context, meetingID int64) ([]*models.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.Participant, 0)
	for id := int64(1); id <= r.nextID; id++ {
		if p, ok := r.items[id]; ok && p.MeetingID == meetingID {
			cp := *p
			out = append(out, &cp)
		}
	}

	return out, nil
}

func (r *fakeParticipantRepo) GetByNameAndMeeting(_ context.Context, name string, meetingID int64) (*models.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id := int64(1); id <= r.nextID; id++ {
		if p, ok := r.items[id]; ok && p.MeetingID == meetingID && p.Name == name {
			cp := *p
			return &cp, nil
		}
	}

	return nil, repository.ErrNotFound
}

func (r *fakeParticipantRepo) UpdateStatus(_ context.Context, id int64, status models.ParticipantStatus) (*models.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.updErr != nil {
		return nil, r.updErr
	}

	p, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	p.Status = status
	cp := *p

	return &cp, nil
}

func (r *fakeParticipantRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}

	delete(r.items, id)

	return nil
}

var errStoreDown = errors.New("store is down")
