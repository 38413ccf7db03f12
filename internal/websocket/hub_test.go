package websocket

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// Widgets create rooms from HTTP handler goroutines while the hub loop reads
// the room table, so room creation and broadcast must be safe to interleave.
func TestConcurrentRoomCreationAndBroadcast(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	handler := NewHandler(hub)

	const sessions = 50

	var wg sync.WaitGroup
	for i := 0; i < sessions; i++ {
		id := fmt.Sprintf("session-%d", i)
		wg.Add(2)
		go func() {
			defer wg.Done()
			handler.CreateRoom(id)
		}()
		go func() {
			defer wg.Done()
			hub.Broadcast <- &WSMessage{
				Content:   "hello",
				RoomID:    id,
				Timestamp: time.Now().Unix(),
			}
		}()
	}
	wg.Wait()

	if got := len(hub.roomIDs()); got != sessions {
		t.Fatalf("rooms = %d, want %d", got, sessions)
	}
}

func TestCreateRoomIsIdempotent(t *testing.T) {
	hub := NewHub()
	handler := NewHandler(hub)

	handler.CreateRoom("session-1")
	handler.CreateRoom("session-1")

	if got := len(hub.roomIDs()); got != 1 {
		t.Fatalf("rooms = %d, want 1", got)
	}
}
