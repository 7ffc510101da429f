package events

import (
	"time"

	"github.com/qrave1/HotSeat/internal/domain/models"
)

type PhaseChangeEvent struct {
	RoomID string       `json:"roomId"`
	Phase  models.Phase `json:"phase"`
}

type ParticipantStatusEvent struct {
	RoomID        string                   `json:"roomId"`
	ParticipantID int64                    `json:"participantId"`
	Status        models.ParticipantStatus `json:"status"`
}

type TimerSyncEvent struct {
	RoomID        string `json:"roomId"`
	TimeRemaining int    `json:"timeRemaining"`
}

type MeetingStateEvent struct {
	Meeting      *models.Meeting       `json:"meeting"`
	Participants []*models.Participant `json:"participants"`
}

type PhaseUpdatedEvent struct {
	Phase          models.Phase `json:"phase"`
	PhaseStartTime time.Time    `json:"phaseStartTime"`
}

type TimerUpdatedEvent struct {
	TimeRemaining int `json:"timeRemaining"`
}
