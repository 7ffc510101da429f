package models

import "time"

// ParticipantStatus - статус участника встречи
type ParticipantStatus string

const (
	StatusWaiting   ParticipantStatus = "waiting"
	StatusSpeaking  ParticipantStatus = "speaking"
	StatusNext      ParticipantStatus = "next"
	StatusCompleted ParticipantStatus = "completed"
)

func (s ParticipantStatus) Valid() bool {
	switch s {
	case StatusWaiting, StatusSpeaking, StatusNext, StatusCompleted:
		return true
	default:
		return false
	}
}

type Participant struct {
	ID        int64             `json:"id" db:"id"`
	MeetingID int64             `json:"meetingId" db:"meeting_id"`
	Name      string            `json:"name" db:"name"`
	Avatar    *string           `json:"avatar" db:"avatar"`
	Status    ParticipantStatus `json:"status" db:"status"`
	JoinedAt  time.Time         `json:"joinedAt" db:"joined_at"`
}

func NewParticipant(meetingID int64, name string, avatar *string, now time.Time) *Participant {
	return &Participant{
		MeetingID: meetingID,
		Name:      name,
		Avatar:    avatar,
		Status:    StatusWaiting,
		JoinedAt:  now,
	}
}
