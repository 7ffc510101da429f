package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/qrave1/HotSeat/internal/domain/input"
	"github.com/qrave1/HotSeat/internal/domain/models"
	"github.com/qrave1/HotSeat/internal/infra/adapters/postgres/repository"
)

type MeetingUsecase interface {
	CreateMeeting(ctx context.Context, input *input.CreateMeetingInput) (*models.Meeting, error)
	GetMeeting(ctx context.Context, id int64) (*models.Meeting, error)
	GetMeetingByRoom(ctx context.Context, roomID string) (*models.Meeting, error)

	AddParticipant(ctx context.Context, input *input.AddParticipantInput) (*models.Participant, error)
	ListParticipants(ctx context.Context, meetingID int64) ([]*models.Participant, error)
	FindParticipant(ctx context.Context, meetingID int64, name string) (*models.Participant, error)
	RemoveParticipant(ctx context.Context, id int64) error
}

type meetingUsecase struct {
	meetingRepo     repository.MeetingRepository
	participantRepo repository.ParticipantRepository
}

func NewMeetingUsecase(meetingRepo repository.MeetingRepository, participantRepo repository.ParticipantRepository) MeetingUsecase {
	return &meetingUsecase{
		meetingRepo:     meetingRepo,
		participantRepo: participantRepo,
	}
}

func (uc *meetingUsecase) CreateMeeting(ctx context.Context, input *input.CreateMeetingInput) (*models.Meeting, error) {
	meeting := models.NewMeeting(input.Title, input.RoomID, time.Now())

	if err := uc.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, fmt.Errorf("create meeting: %w", err)
	}

	return meeting, nil
}

func (uc *meetingUsecase) GetMeeting(ctx context.Context, id int64) (*models.Meeting, error) {
	return uc.meetingRepo.GetByID(ctx, id)
}

func (uc *meetingUsecase) GetMeetingByRoom(ctx context.Context, roomID string) (*models.Meeting, error) {
	return uc.meetingRepo.GetByRoomID(ctx, roomID)
}

func (uc *meetingUsecase) AddParticipant(ctx context.Context, input *input.AddParticipantInput) (*models.Participant, error) {
	// Проверяем, что встреча существует
	if _, err := uc.meetingRepo.GetByID(ctx, input.MeetingID); err != nil {
		return nil, fmt.Errorf("get meeting by id: %w", err)
	}

	participant := models.NewParticipant(input.MeetingID, input.Name, input.Avatar, time.Now())

	if err := uc.participantRepo.Create(ctx, participant); err != nil {
		return nil, fmt.Errorf("create participant: %w", err)
	}

	return participant, nil
}

func (uc *meetingUsecase) ListParticipants(ctx context.Context, meetingID int64) ([]*models.Participant, error) {
	return uc.participantRepo.ListByMeeting(ctx, meetingID)
}

func (uc *meetingUsecase) FindParticipant(ctx context.Context, meetingID int64, name string) (*models.Participant, error) {
	return uc.participantRepo.GetByNameAndMeeting(ctx, name, meetingID)
}

func (uc *meetingUsecase) RemoveParticipant(ctx context.Context, id int64) error {
	return uc.participantRepo.Delete(ctx, id)
}
