package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/qrave1/HotSeat/internal/domain/input"
	"github.com/qrave1/HotSeat/internal/domain/models"
	"github.com/qrave1/HotSeat/internal/infra/adapters/postgres/repository"
)

func TestMeetingUsecase_CreateAndAddParticipants(t *testing.T) {
	uc := NewMeetingUsecase(newFakeMeetingRepo(), newFakeParticipantRepo())
	ctx := context.Background()

	meeting, err := uc.CreateMeeting(ctx, &input.CreateMeetingInput{Title: "Weekly", RoomID: "weekly"})
	if err != nil {
		t.Fatalf("create meeting: %v", err)
	}
	if meeting.ID == 0 || meeting.CurrentPhase != models.PhaseCheckIn {
		t.Fatalf("unexpected meeting: %+v", meeting)
	}

	byRoom, err := uc.GetMeetingByRoom(ctx, "weekly")
	if err != nil || byRoom.ID != meeting.ID {
		t.Fatalf("get by room: %+v, %v", byRoom, err)
	}

	avatar := "https://example.com/a.png"
	p, err := uc.AddParticipant(ctx, &input.AddParticipantInput{MeetingID: meeting.ID, Name: "Alice", Avatar: &avatar})
	if err != nil {
		t.Fatalf("add participant: %v", err)
	}
	if p.Status != models.StatusWaiting {
		t.Fatalf("new participant must be waiting, got %s", p.Status)
	}

	found, err := uc.FindParticipant(ctx, meeting.ID, "Alice")
	if err != nil || found.ID != p.ID {
		t.Fatalf("find participant: %+v, %v", found, err)
	}

	if _, err := uc.FindParticipant(ctx, meeting.ID, "Bob"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	list, err := uc.ListParticipants(ctx, meeting.ID)
	if err != nil || len(list) != 1 {
		t.Fatalf("list participants: %v, %v", list, err)
	}

	if err := uc.RemoveParticipant(ctx, p.ID); err != nil {
		t.Fatalf("remove participant: %v", err)
	}
	if err := uc.RemoveParticipant(ctx, p.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestMeetingUsecase_AddParticipantToMissingMeeting(t *testing.T) {
	uc := NewMeetingUsecase(newFakeMeetingRepo(), newFakeParticipantRepo())

	_, err := uc.AddParticipant(context.Background(), &input.AddParticipantInput{MeetingID: 7, Name: "Alice"})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
