package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/qrave1/HotSeat/internal/application/constant"
	"github.com/qrave1/HotSeat/internal/application/metric"
	"github.com/qrave1/HotSeat/internal/domain/events"
	"github.com/qrave1/HotSeat/internal/domain/runtime"
	"github.com/qrave1/HotSeat/internal/infra/adapters/memory"
)

type SignalingUsecase interface {
	HandleConnect(ctx context.Context, connID string)
	HandleDisconnect(ctx context.Context, connID string)

	HandleJoin(ctx context.Context, connID string, joinEvent events.JoinRoomEvent) error
	HandleLeave(ctx context.Context, connID, roomID string)

	HandleRelay(ctx context.Context, connID string, kind events.RelayKind, relayEvent events.RelayEvent) error
	HandleMediaState(ctx context.Context, connID string, media runtime.MediaState)

	HandleGetParticipants(ctx context.Context, connID, roomID string)
	ListMembers(roomID string) []events.RoomParticipant

	HandlePing(ctx context.Context, connID string)
}

// signalingUsecase сериализует все изменения членства одним мьютексом.
// Исходящие сообщения ставятся в очереди соединений под этим же мьютексом,
// поэтому каждый участник видит уведомления в порядке переходов.
type signalingUsecase struct {
	mu sync.Mutex

	connRegistry  memory.ConnectionRegistry
	roomDirectory memory.RoomDirectory
	wsRepo        memory.WebsocketConnectionRepository
}

func NewSignalingUsecase(
	connRegistry memory.ConnectionRegistry,
	roomDirectory memory.RoomDirectory,
	wsRepo memory.WebsocketConnectionRepository,
) SignalingUsecase {
	return &signalingUsecase{
		connRegistry:  connRegistry,
		roomDirectory: roomDirectory,
		wsRepo:        wsRepo,
	}
}

func (s *signalingUsecase) HandleConnect(ctx context.Context, connID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.connRegistry.Register(connID)

	s.wsRepo.Write(connID, events.NewEnvelope(events.TypeConnected, events.ConnectedEvent{ID: connID}))
}

func (s *signalingUsecase) HandleDisconnect(ctx context.Context, connID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	roomID, ok := s.connRegistry.Unregister(connID)
	if !ok || roomID == "" {
		return
	}

	s.leaveLocked(roomID, connID)

	slog.Debug("connection left room on disconnect", slog.String(constant.ConnID, connID), slog.String(constant.RoomID, roomID))
}

func (s *signalingUsecase) HandleJoin(ctx context.Context, connID string, joinEvent events.JoinRoomEvent) error {
	if joinEvent.RoomID == "" {
		return ErrRoomIDRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conn, ok := s.connRegistry.Get(connID)
	if !ok {
		return fmt.Errorf("join room %s: %w", joinEvent.RoomID, ErrNotRegistered)
	}

	// Сначала выходим из предыдущей комнаты, даже если это та же самая
	if conn.InRoom() {
		s.leaveLocked(conn.RoomID, connID)
	}

	joined, _ := s.connRegistry.SetRoom(connID, joinEvent.RoomID, joinEvent.ParticipantName)
	s.roomDirectory.Add(joinEvent.RoomID, connID)

	others := s.participantsLocked(joinEvent.RoomID, connID)

	joinedEnvelope := events.NewEnvelope(events.TypeParticipantJoined, events.NewRoomParticipant(joined))
	for _, other := range others {
		s.wsRepo.Write(other.ID, joinedEnvelope)
	}

	s.wsRepo.Write(connID, events.NewEnvelope(events.TypeRoomJoined, events.RoomParticipantsEvent{
		RoomID:       joinEvent.RoomID,
		Participants: others,
	}))

	metric.SetSignalingRooms(s.roomDirectory.RoomCount())

	slog.Info(
		"participant joined room",
		slog.String(constant.ConnID, connID),
		slog.String(constant.RoomID, joinEvent.RoomID),
		slog.Int("participants", len(others)+1),
	)

	return nil
}

func (s *signalingUsecase) HandleLeave(ctx context.Context, connID, roomID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if roomID == "" {
		conn, ok := s.connRegistry.Get(connID)
		if !ok || !conn.InRoom() {
			return
		}

		roomID = conn.RoomID
	}

	s.leaveLocked(roomID, connID)
}

// leaveLocked убирает соединение из комнаты и уведомляет оставшихся. Вызывается под s.mu.
func (s *signalingUsecase) leaveLocked(roomID, connID string) {
	removed, deleted := s.roomDirectory.Remove(roomID, connID)
	if !removed {
		return
	}

	if conn, ok := s.connRegistry.Get(connID); ok && conn.RoomID == roomID {
		s.connRegistry.ClearRoom(connID)
	}

	if !deleted {
		s.broadcastLocked(
			roomID,
			connID,
			events.NewEnvelope(events.TypeParticipantLeft, events.ParticipantLeftEvent{ParticipantID: connID}),
		)
	}

	metric.SetSignalingRooms(s.roomDirectory.RoomCount())
}

func (s *signalingUsecase) HandleRelay(
	ctx context.Context,
	connID string,
	kind events.RelayKind,
	relayEvent events.RelayEvent,
) error {
	if err := relayEvent.Validate(); err != nil {
		return err
	}

	relayed, err := events.NewRelayedEvent(kind, connID, relayEvent.Payload(kind))
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Адресат уже отключился - молча отбрасываем
	if _, ok := s.connRegistry.Get(relayEvent.TargetID); !ok {
		metric.IncrementRelayDropped(string(kind))

		slog.Debug(
			"relay target not found",
			slog.String(constant.ConnID, connID),
			slog.String(constant.TargetID, relayEvent.TargetID),
			slog.String(constant.Kind, string(kind)),
		)
		return nil
	}

	if !s.wsRepo.Write(relayEvent.TargetID, events.NewEnvelope(kind.MessageType(), relayed)) {
		metric.IncrementRelayDropped(string(kind))
		return nil
	}

	metric.IncrementRelayed(string(kind))

	return nil
}

func (s *signalingUsecase) HandleMediaState(ctx context.Context, connID string, media runtime.MediaState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conn, ok := s.connRegistry.Get(connID)
	if !ok || !conn.InRoom() {
		return
	}

	s.connRegistry.SetMediaState(connID, media)

	s.broadcastLocked(
		conn.RoomID,
		connID,
		events.NewEnvelope(events.TypeParticipantMediaUpdated, events.NewMediaUpdatedEvent(connID, media)),
	)
}

func (s *signalingUsecase) HandleGetParticipants(ctx context.Context, connID, roomID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wsRepo.Write(connID, events.NewEnvelope(events.TypeRoomParticipants, events.RoomParticipantsEvent{
		RoomID:       roomID,
		Participants: s.participantsLocked(roomID, ""),
	}))
}

func (s *signalingUsecase) ListMembers(roomID string) []events.RoomParticipant {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.participantsLocked(roomID, "")
}

func (s *signalingUsecase) HandlePing(ctx context.Context, connID string) {
	s.wsRepo.Write(connID, events.NewEnvelope(events.TypePong, nil))
}

// participantsLocked возвращает участников комнаты кроме exclude, никогда не nil
func (s *signalingUsecase) participantsLocked(roomID, exclude string) []events.RoomParticipant {
	members := s.roomDirectory.Members(roomID)

	participants := make([]events.RoomParticipant, 0, len(members))
	for _, memberID := range members {
		if memberID == exclude {
			continue
		}

		conn, ok := s.connRegistry.Get(memberID)
		if !ok {
			continue
		}

		participants = append(participants, events.NewRoomParticipant(conn))
	}

	return participants
}

func (s *signalingUsecase) broadcastLocked(roomID, exclude string, envelope events.Envelope) {
	for _, memberID := range s.roomDirectory.Members(roomID) {
		if memberID == exclude {
			continue
		}

		s.wsRepo.Write(memberID, envelope)
	}
}
