package runtime

// MediaState - состояние медиа участника
type MediaState struct {
	AudioEnabled    bool `json:"audioEnabled"`
	VideoEnabled    bool `json:"videoEnabled"`
	IsScreenSharing bool `json:"isScreenSharing"`
}

// DefaultMediaState выставляется при входе в комнату
func DefaultMediaState() MediaState {
	return MediaState{AudioEnabled: true, VideoEnabled: true}
}

// Connection - живое WS соединение и его состояние в сигналинге
type Connection struct {
	ID     string
	Name   string
	RoomID string
	Media  MediaState
}

// InRoom сообщает, состоит ли соединение в комнате сигналинга
func (c Connection) InRoom() bool {
	return c.RoomID != ""
}

// DefaultName возвращает имя по умолчанию для соединения
func DefaultName(connID string) string {
	short := connID
	if len(short) > 6 {
		short = short[:6]
	}

	return "Participant " + short
}
