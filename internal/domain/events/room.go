package events

import (
	"github.com/qrave1/HotSeat/internal/domain/runtime"
)

// JoinRoomEvent - вход в комнату сигналинга
type JoinRoomEvent struct {
	RoomID          string `json:"roomId"`
	ParticipantName string `json:"participantName"`
}

// RoomEvent - запросы, которым нужен только id комнаты
type RoomEvent struct {
	RoomID string `json:"roomId"`
}

// MediaStateEvent - обновление медиа от клиента
type MediaStateEvent = runtime.MediaState

// RoomParticipant - участник комнаты сигналинга в том виде, в каком его видят клиенты
type RoomParticipant struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	RoomID          string `json:"roomId"`
	AudioEnabled    bool   `json:"audioEnabled"`
	VideoEnabled    bool   `json:"videoEnabled"`
	IsScreenSharing bool   `json:"isScreenSharing"`
}

func NewRoomParticipant(conn runtime.Connection) RoomParticipant {
	return RoomParticipant{
		ID:              conn.ID,
		Name:            conn.Name,
		RoomID:          conn.RoomID,
		AudioEnabled:    conn.Media.AudioEnabled,
		VideoEnabled:    conn.Media.VideoEnabled,
		IsScreenSharing: conn.Media.IsScreenSharing,
	}
}

// RoomParticipantsEvent используется и для room-joined, и для room-participants
type RoomParticipantsEvent struct {
	RoomID       string            `json:"roomId"`
	Participants []RoomParticipant `json:"participants"`
}

type ParticipantLeftEvent struct {
	ParticipantID string `json:"participantId"`
}

type MediaUpdatedEvent struct {
	ParticipantID   string `json:"participantId"`
	AudioEnabled    bool   `json:"audioEnabled"`
	VideoEnabled    bool   `json:"videoEnabled"`
	IsScreenSharing bool   `json:"isScreenSharing"`
}

func NewMediaUpdatedEvent(connID string, media runtime.MediaState) MediaUpdatedEvent {
	return MediaUpdatedEvent{
		ParticipantID:   connID,
		AudioEnabled:    media.AudioEnabled,
		VideoEnabled:    media.VideoEnabled,
		IsScreenSharing: media.IsScreenSharing,
	}
}
