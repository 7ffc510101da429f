package dto

import (
	"github.com/qrave1/HotSeat/internal/domain/events"
	"github.com/qrave1/HotSeat/internal/domain/models"
)

type CreateMeetingRequest struct {
	Title  string `json:"title"`
	RoomID string `json:"roomId"`
}

type AddParticipantRequest struct {
	Name   string  `json:"name"`
	Avatar *string `json:"avatar"`
}

type ParticipantCheckResponse struct {
	Exists      bool                `json:"exists"`
	Participant *models.Participant `json:"participant"`
}

type RoomParticipantsResponse struct {
	RoomID       string                   `json:"roomId"`
	Participants []events.RoomParticipant `json:"participants"`
}
