package constant

// Ключи атрибутов для slog
const (
	Error       = "error"
	ConnID      = "conn_id"
	TargetID    = "target_id"
	RoomID      = "room_id"
	MeetingID   = "meeting_id"
	Participant = "participant_id"
	Phase       = "phase"
	Status      = "status"
	MessageType = "message_type"
	Kind        = "kind"
)
