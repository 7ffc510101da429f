package events

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrTargetRequired = errors.New("target id is required")

// RelayKind - вид пересылаемого WebRTC сообщения
type RelayKind string

const (
	RelayOffer        RelayKind = "offer"
	RelayAnswer       RelayKind = "answer"
	RelayICECandidate RelayKind = "ice-candidate"
)

// MessageType возвращает тип сообщения на проводе для данного вида
func (k RelayKind) MessageType() string {
	return "webrtc-" + string(k)
}

// RelayKindFromType сопоставляет входящий тип сообщения с видом пересылки
func RelayKindFromType(messageType string) (RelayKind, bool) {
	switch messageType {
	case TypeWebRTCOffer:
		return RelayOffer, true
	case TypeWebRTCAnswer:
		return RelayAnswer, true
	case TypeWebRTCICECandidate:
		return RelayICECandidate, true
	default:
		return "", false
	}
}

// RelayEvent - входящее offer/answer/ice-candidate. Полезная нагрузка не разбирается.
type RelayEvent struct {
	TargetID  string          `json:"targetId"`
	Offer     json.RawMessage `json:"offer,omitempty"`
	Answer    json.RawMessage `json:"answer,omitempty"`
	Candidate json.RawMessage `json:"candidate,omitempty"`
}

func (e RelayEvent) Validate() error {
	if e.TargetID == "" {
		return ErrTargetRequired
	}

	return nil
}

// Payload возвращает нагрузку, соответствующую виду
func (e RelayEvent) Payload(kind RelayKind) json.RawMessage {
	switch kind {
	case RelayOffer:
		return e.Offer
	case RelayAnswer:
		return e.Answer
	default:
		return e.Candidate
	}
}

// RelayedEvent - то, что получает адресат
type RelayedEvent struct {
	FromID    string          `json:"fromId"`
	Offer     json.RawMessage `json:"offer,omitempty"`
	Answer    json.RawMessage `json:"answer,omitempty"`
	Candidate json.RawMessage `json:"candidate,omitempty"`
}

func NewRelayedEvent(kind RelayKind, fromID string, payload json.RawMessage) (RelayedEvent, error) {
	ev := RelayedEvent{FromID: fromID}

	switch kind {
	case RelayOffer:
		ev.Offer = payload
	case RelayAnswer:
		ev.Answer = payload
	case RelayICECandidate:
		ev.Candidate = payload
	default:
		return RelayedEvent{}, fmt.Errorf("unknown relay kind %q", kind)
	}

	return ev, nil
}
