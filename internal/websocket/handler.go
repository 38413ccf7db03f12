package websocket

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/websocket"

	"nexmart-chat-backend/internal/env"
)

var (
	upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
	redisClient *redis.Client
)

// InitRedis connects the pub/sub client used to fan chat replies out to open
// widgets. The server mains call it once after env.MustValidate.
func InitRedis() {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     env.Get(env.ChatRedisURL),
		Password: env.Get(env.ChatRedisPass),
		DB:       0,
	})
}

type Handler struct {
	hub         *Hub
	redisClient *redis.Client
}

func NewHandler(h *Hub) *Handler {
	return &Handler{
		hub:         h,
		redisClient: redisClient,
	}
}

// subscribeToRoomChannel relays messages published on the session's Redis
// channel into the hub so every connected widget receives them.
func (h *Handler) subscribeToRoomChannel(roomID string) {
	if _, exists := h.hub.room(roomID); !exists {
		log.Printf("room %s not found for subscription", roomID)
		return
	}
	if h.redisClient == nil {
		return
	}

	subscriber := h.redisClient.Subscribe(context.Background(), roomID)
	defer subscriber.Close()

	ch := subscriber.Channel()
	for msg := range ch {
		h.hub.Broadcast <- &WSMessage{
			Content:   msg.Payload,
			RoomID:    roomID,
			Timestamp: time.Now().Unix(),
		}
	}
}

// CreateRoom registers a room for the chat session and starts its Redis
// subscription. Creating an existing room is a no-op.
func (h *Handler) CreateRoom(id string) {
	if !h.hub.addRoom(id) {
		return
	}

	go h.subscribeToRoomChannel(id)
}

func (h *Handler) JoinRoom(w http.ResponseWriter, r *http.Request, roomId, clientId string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cl := &WSClient{
		Conn:     conn,
		Message:  make(chan *WSMessage, 10),
		ID:       clientId,
		RoomID:   roomId,
		done:     make(chan struct{}),
		isClosed: false,
	}

	h.hub.Register <- cl

	go cl.keepAlive()
	go cl.writeMessage()
	go cl.readMessage(h.hub)
}

func (h *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	rooms := make([]RoomRes, 0)

	for _, id := range h.hub.roomIDs() {
		rooms = append(rooms, RoomRes{
			ID: id,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(rooms)
}

func (h *Handler) SubscribeToRedisChannels() {
	for _, id := range h.hub.roomIDs() {
		go h.subscribeToRoomChannel(id)
	}
}
