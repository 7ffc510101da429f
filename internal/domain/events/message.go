package events

import (
	"encoding/json"
)

// Типы входящих сообщений
const (
	TypeJoinRoom                = "join-room"
	TypeLeaveRoom               = "leave-room"
	TypeGetRoomParticipants     = "get-room-participants"
	TypeWebRTCOffer             = "webrtc-offer"
	TypeWebRTCAnswer            = "webrtc-answer"
	TypeWebRTCICECandidate      = "webrtc-ice-candidate"
	TypeUpdateMediaState        = "update-media-state"
	TypeJoinMeeting             = "join-meeting"
	TypeLeaveMeeting            = "leave-meeting"
	TypePhaseChange             = "phase-change"
	TypeParticipantStatusChange = "participant-status-change"
	TypeTimerSync               = "timer-sync"
	TypePing                    = "ping"
)

// Типы исходящих сообщений
const (
	TypeConnected               = "connected"
	TypeRoomJoined              = "room-joined"
	TypeRoomParticipants        = "room-participants"
	TypeParticipantJoined       = "participant-joined"
	TypeParticipantLeft         = "participant-left"
	TypeParticipantMediaUpdated = "participant-media-updated"
	TypeMeetingState            = "meeting-state"
	TypePhaseUpdated            = "phase-updated"
	TypeParticipantUpdated      = "participant-updated"
	TypeTimerUpdated            = "timer-updated"
	TypeError                   = "error"
	TypePong                    = "pong"
)

// Message - общее входящее событие
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Envelope - исходящее событие
type Envelope struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

func NewEnvelope(messageType string, data any) Envelope {
	return Envelope{Type: messageType, Data: data}
}

// NewError формирует сообщение об ошибке для отправителя
func NewError(message string) Envelope {
	return NewEnvelope(TypeError, ErrorEvent{Message: message})
}

type ErrorEvent struct {
	Message string `json:"message"`
}

type ConnectedEvent struct {
	ID string `json:"id"`
}
