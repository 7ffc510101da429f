package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/qrave1/HotSeat/internal/application/constant"
	"github.com/qrave1/HotSeat/internal/application/metric"
	"github.com/qrave1/HotSeat/internal/domain/events"
	"github.com/qrave1/HotSeat/internal/infra/adapters/memory"
	"github.com/qrave1/HotSeat/internal/infra/adapters/postgres/repository"
)

// MeetingPhaseUsecase рассылает фазы встречи, статусы участников и таймер.
// Группы рассылки встреч не связаны с комнатами сигналинга.
type MeetingPhaseUsecase interface {
	JoinMeeting(ctx context.Context, connID, roomID string) error
	LeaveMeeting(ctx context.Context, connID, roomID string)

	ChangePhase(ctx context.Context, connID string, phaseEvent events.PhaseChangeEvent) error
	UpdateParticipantStatus(ctx context.Context, connID string, statusEvent events.ParticipantStatusEvent) error
	SyncTimer(ctx context.Context, connID string, timerEvent events.TimerSyncEvent) error

	HandleDisconnect(ctx context.Context, connID string)
}

type meetingPhaseUsecase struct {
	meetingRepo     repository.MeetingRepository
	participantRepo repository.ParticipantRepository

	membersRepo memory.MeetingMembersRepository
	wsRepo      memory.WebsocketConnectionRepository

	now func() time.Time
}

func NewMeetingPhaseUsecase(
	meetingRepo repository.MeetingRepository,
	participantRepo repository.ParticipantRepository,
	membersRepo memory.MeetingMembersRepository,
	wsRepo memory.WebsocketConnectionRepository,
) MeetingPhaseUsecase {
	return &meetingPhaseUsecase{
		meetingRepo:     meetingRepo,
		participantRepo: participantRepo,
		membersRepo:     membersRepo,
		wsRepo:          wsRepo,
		now:             time.Now,
	}
}

func (uc *meetingPhaseUsecase) JoinMeeting(ctx context.Context, connID, roomID string) error {
	if roomID == "" {
		return ErrRoomIDRequired
	}

	uc.membersRepo.Join(roomID, connID)

	meeting, err := uc.meetingRepo.GetByRoomID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}

		return fmt.Errorf("get meeting by room id: %w", err)
	}

	participants, err := uc.participantRepo.ListByMeeting(ctx, meeting.ID)
	if err != nil {
		return fmt.Errorf("list participants: %w", err)
	}

	uc.wsRepo.Write(connID, events.NewEnvelope(events.TypeMeetingState, events.MeetingStateEvent{
		Meeting:      meeting,
		Participants: participants,
	}))

	return nil
}

func (uc *meetingPhaseUsecase) LeaveMeeting(ctx context.Context, connID, roomID string) {
	uc.membersRepo.Leave(roomID, connID)
}

func (uc *meetingPhaseUsecase) ChangePhase(ctx context.Context, connID string, phaseEvent events.PhaseChangeEvent) error {
	if phaseEvent.RoomID == "" {
		return ErrRoomIDRequired
	}

	if !phaseEvent.Phase.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPhase, phaseEvent.Phase)
	}

	meeting, err := uc.meetingRepo.GetByRoomID(ctx, phaseEvent.RoomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}

		uc.writeError(connID, "failed to update phase")
		return fmt.Errorf("get meeting by room id: %w", err)
	}

	updated, err := uc.meetingRepo.UpdatePhase(ctx, meeting.ID, phaseEvent.Phase, uc.now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}

		uc.writeError(connID, "failed to update phase")
		return fmt.Errorf("update meeting phase: %w", err)
	}

	uc.broadcast(phaseEvent.RoomID, "", events.NewEnvelope(events.TypePhaseUpdated, events.PhaseUpdatedEvent{
		Phase:          updated.CurrentPhase,
		PhaseStartTime: updated.PhaseStartTime,
	}))

	slog.Info(
		"meeting phase changed",
		slog.String(constant.RoomID, phaseEvent.RoomID),
		slog.Int64(constant.MeetingID, meeting.ID),
		slog.String(constant.Phase, string(updated.CurrentPhase)),
	)

	return nil
}

func (uc *meetingPhaseUsecase) UpdateParticipantStatus(
	ctx context.Context,
	connID string,
	statusEvent events.ParticipantStatusEvent,
) error {
	if statusEvent.RoomID == "" {
		return ErrRoomIDRequired
	}

	if !statusEvent.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, statusEvent.Status)
	}

	participant, err := uc.participantRepo.UpdateStatus(ctx, statusEvent.ParticipantID, statusEvent.Status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}

		uc.writeError(connID, "failed to update participant status")
		return fmt.Errorf("update participant status: %w", err)
	}

	uc.broadcast(statusEvent.RoomID, "", events.NewEnvelope(events.TypeParticipantUpdated, participant))

	return nil
}

func (uc *meetingPhaseUsecase) SyncTimer(ctx context.Context, connID string, timerEvent events.TimerSyncEvent) error {
	if timerEvent.RoomID == "" {
		return ErrRoomIDRequired
	}

	uc.broadcast(timerEvent.RoomID, connID, events.NewEnvelope(events.TypeTimerUpdated, events.TimerUpdatedEvent{
		TimeRemaining: timerEvent.TimeRemaining,
	}))

	return nil
}

func (uc *meetingPhaseUsecase) HandleDisconnect(ctx context.Context, connID string) {
	rooms := uc.membersRepo.LeaveAll(connID)

	if len(rooms) > 0 {
		slog.Debug("connection left meetings on disconnect", slog.String(constant.ConnID, connID), slog.Any("rooms", rooms))
	}
}

func (uc *meetingPhaseUsecase) broadcast(roomID, exclude string, envelope events.Envelope) {
	for _, connID := range uc.membersRepo.Members(roomID) {
		if connID == exclude {
			continue
		}

		uc.wsRepo.Write(connID, envelope)
	}

	metric.IncrementMeetingBroadcast(envelope.Type)
}

func (uc *meetingPhaseUsecase) writeError(connID, message string) {
	uc.wsRepo.Write(connID, events.NewError(message))
}
