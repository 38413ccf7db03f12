package websocket

// Room groups the widget connections of one chat session. The room id is the
// session id and doubles as the Redis pub/sub channel name.
type Room struct {
	Id      string               `json:"id"`
	Clients map[string]*WSClient `json:"clients"`
}

type WSMessage struct {
	Content   string `json:"content"`
	RoomID    string `json:"roomId"`
	Timestamp int64  `json:"timestamp"`
}

type RoomRes struct {
	ID string `json:"id"`
}
