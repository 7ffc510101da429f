package models

import (
	"time"
)

// Phase - этап встречи
type Phase string

const (
	PhaseCheckIn     Phase = "check-in"
	PhaseHotSeat     Phase = "hot-seat"
	PhaseFeedback    Phase = "feedback"
	PhaseActionSteps Phase = "action-steps"
)

func (p Phase) Valid() bool {
	switch p {
	case PhaseCheckIn, PhaseHotSeat, PhaseFeedback, PhaseActionSteps:
		return true
	default:
		return false
	}
}

type Meeting struct {
	ID             int64     `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	RoomID         string    `json:"roomId" db:"room_id"`
	CurrentPhase   Phase     `json:"currentPhase" db:"current_phase"`
	PhaseStartTime time.Time `json:"phaseStartTime" db:"phase_start_time"`
	IsActive       bool      `json:"isActive" db:"is_active"`
	IsRecording    bool      `json:"isRecording" db:"is_recording"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// NewMeeting создает встречу в начальной фазе
func NewMeeting(title, roomID string, now time.Time) *Meeting {
	return &Meeting{
		Title:          title,
		RoomID:         roomID,
		CurrentPhase:   PhaseCheckIn,
		PhaseStartTime: now,
		IsActive:       true,
		CreatedAt:      now,
	}
}
