package websocket

import "sync"

// Hub owns the room table. Rooms is written from HTTP handler goroutines and
// read from the hub loop and the Redis subscribers, so every access goes
// through the mutex-guarded accessors below. A room's Clients map is touched
// only by the Run loop.
type Hub struct {
	mu         sync.RWMutex
	Rooms      map[string]*Room
	Register   chan *WSClient
	Unregister chan *WSClient
	Broadcast  chan *WSMessage
}

func NewHub() *Hub {
	return &Hub{
		Rooms:      make(map[string]*Room),
		Register:   make(chan *WSClient),
		Unregister: make(chan *WSClient),
		Broadcast:  make(chan *WSMessage),
	}
}

func (h *Hub) room(id string) (*Room, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	room, ok := h.Rooms[id]
	return room, ok
}

// addRoom inserts a room for the session and reports whether it was created.
func (h *Hub) addRoom(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, exists := h.Rooms[id]; exists {
		return false
	}
	h.Rooms[id] = &Room{
		Id:      id,
		Clients: make(map[string]*WSClient),
	}
	setRooms(len(h.Rooms))
	return true
}

func (h *Hub) roomIDs() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	ids := make([]string, 0, len(h.Rooms))
	for id := range h.Rooms {
		ids = append(ids, id)
	}
	return ids
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			room, ok := h.room(client.RoomID)
			if !ok {
				// Session room was never created; drop the registration.
				continue
			}
			room.Clients[client.ID] = client
			incConnections()

		case client := <-h.Unregister:
			room, ok := h.room(client.RoomID)
			if !ok {
				continue
			}
			if _, ok := room.Clients[client.ID]; ok {
				delete(room.Clients, client.ID)
				close(client.Message)
				decConnections()
			}

		case message := <-h.Broadcast:
			room, ok := h.room(message.RoomID)
			if !ok {
				continue
			}
			delivered := 0
			for _, client := range room.Clients {
				select {
				case client.Message <- message:
					delivered++
				default:
					// Slow consumer, drop the connection rather than block
					// the hub loop.
					close(client.Message)
					delete(room.Clients, client.ID)
					decConnections()
				}
			}
			if delivered > 0 {
				addDelivered(delivered)
			}
		}
	}
}
