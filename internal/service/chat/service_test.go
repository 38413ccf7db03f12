package chat

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"nexmart-chat-backend/internal/model"
	"nexmart-chat-backend/internal/service/chatbot"
)

type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]model.ChatSessionItem
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: make(map[string]model.ChatSessionItem)}
}

func (m *memoryStore) SaveSession(ctx context.Context, session model.ChatSessionItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.SessionID] = session
	return nil
}

func (m *memoryStore) GetSession(ctx context.Context, sessionID string) (model.ChatSessionItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[sessionID]
	if !ok {
		return model.ChatSessionItem{}, ErrSessionNotFound
	}
	return session, nil
}

func (m *memoryStore) DeleteSession(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

type stubResolver struct {
	response chatbot.Response
	lastCtx  chatbot.Context
}

func (s *stubResolver) Resolve(ctx context.Context, utterance string, chatCtx chatbot.Context) chatbot.Response {
	s.lastCtx = chatCtx
	return s.response
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2025, time.August, 30, 12, 0, 0, 0, time.UTC)
	}
}

func TestStartSessionSeedsWelcomeMessage(t *testing.T) {
	store := newMemoryStore()
	service := NewWithClock(store, &stubResolver{}, nil, fixedClock())

	session, err := service.StartSession(context.Background(), "")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	if session.SessionID == "" {
		t.Fatal("expected a session id")
	}
	if len(session.Messages) != 1 {
		t.Fatalf("expected 1 seeded message, got %d", len(session.Messages))
	}

	seeded := session.Messages[0]
	if seeded.Sender != model.ChatSenderBot {
		t.Fatalf("expected bot sender, got %s", seeded.Sender)
	}
	var response chatbot.Response
	if err := json.Unmarshal(seeded.Response, &response); err != nil {
		t.Fatalf("unmarshal seeded response: %v", err)
	}
	if response.MessageKey != chatbot.KeyWelcome {
		t.Fatalf("expected welcome key, got %s", response.MessageKey)
	}

	stored, err := store.GetSession(context.Background(), session.SessionID)
	if err != nil {
		t.Fatalf("stored session: %v", err)
	}
	if stored.CreatedAt != "2025-08-30T12:00:00Z" {
		t.Fatalf("unexpected createdAt %s", stored.CreatedAt)
	}
}

func TestSendMessageAppendsBothSides(t *testing.T) {
	store := newMemoryStore()
	resolver := &stubResolver{response: chatbot.Response{
		Type:       chatbot.ResponseTypeText,
		MessageKey: chatbot.KeyGreeting,
	}}

	var published []interface{}
	publish := func(roomID string, payload interface{}) error {
		published = append(published, payload)
		return nil
	}

	service := NewWithClock(store, resolver, publish, fixedClock())
	session, err := service.StartSession(context.Background(), "shopper-1")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	result, err := service.SendMessage(context.Background(), session.SessionID, "  hi there  ", chatbot.Context{IsLoggedIn: true})
	if err != nil {
		t.Fatalf("send message: %v", err)
	}
	if result.UserMessage.Body != "hi there" {
		t.Fatalf("expected trimmed body, got %q", result.UserMessage.Body)
	}
	if !resolver.lastCtx.IsLoggedIn {
		t.Fatal("expected conversation context to reach the resolver")
	}
	if result.Response.MessageKey != chatbot.KeyGreeting {
		t.Fatalf("unexpected response key %s", result.Response.MessageKey)
	}

	stored, err := store.GetSession(context.Background(), session.SessionID)
	if err != nil {
		t.Fatalf("stored session: %v", err)
	}
	if len(stored.Messages) != 3 {
		t.Fatalf("expected welcome + user + bot, got %d messages", len(stored.Messages))
	}
	if stored.Messages[1].Sender != model.ChatSenderUser || stored.Messages[2].Sender != model.ChatSenderBot {
		t.Fatal("messages stored out of order")
	}

	if len(published) != 1 {
		t.Fatalf("expected 1 published message, got %d", len(published))
	}
}

func TestSendMessageValidation(t *testing.T) {
	service := NewWithClock(newMemoryStore(), &stubResolver{}, nil, fixedClock())

	_, err := service.SendMessage(context.Background(), "chat_abc", "   ", chatbot.Context{})
	var svcErr *Error
	if !errors.As(err, &svcErr) || svcErr.Code != ErrorCodeValidation {
		t.Fatalf("expected validation error for empty body, got %v", err)
	}

	_, err = service.SendMessage(context.Background(), "chat_missing", "hello", chatbot.Context{})
	if !errors.As(err, &svcErr) || svcErr.Code != ErrorCodeNotFound {
		t.Fatalf("expected not found for unknown session, got %v", err)
	}
}

func TestSendMessageSurvivesPublishFailure(t *testing.T) {
	store := newMemoryStore()
	publish := func(roomID string, payload interface{}) error {
		return errors.New("redis down")
	}
	service := NewWithClock(store, &stubResolver{response: chatbot.Response{
		Type:       chatbot.ResponseTypeText,
		MessageKey: chatbot.KeyThanks,
	}}, publish, fixedClock())

	session, err := service.StartSession(context.Background(), "")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	result, err := service.SendMessage(context.Background(), session.SessionID, "thanks", chatbot.Context{})
	if err != nil {
		t.Fatalf("send message should not fail on publish error: %v", err)
	}
	if result.Response.MessageKey != chatbot.KeyThanks {
		t.Fatalf("unexpected response key %s", result.Response.MessageKey)
	}
}

func TestClearSession(t *testing.T) {
	store := newMemoryStore()
	service := NewWithClock(store, &stubResolver{}, nil, fixedClock())

	session, err := service.StartSession(context.Background(), "")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	if err := service.ClearSession(context.Background(), session.SessionID); err != nil {
		t.Fatalf("clear session: %v", err)
	}

	_, err = service.History(context.Background(), session.SessionID)
	var svcErr *Error
	if !errors.As(err, &svcErr) || svcErr.Code != ErrorCodeNotFound {
		t.Fatalf("expected not found after clear, got %v", err)
	}
}
