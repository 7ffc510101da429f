package input

type CreateMeetingInput struct {
	Title  string `json:"title"`
	RoomID string `json:"roomId"`
}

type AddParticipantInput struct {
	MeetingID int64   `json:"meetingId"`
	Name      string  `json:"name"`
	Avatar    *string `json:"avatar"`
}
