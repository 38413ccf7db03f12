package endpoints

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"nexmart-chat-backend/internal/api"
	"nexmart-chat-backend/internal/dto"
	"nexmart-chat-backend/internal/model"
	chatsvc "nexmart-chat-backend/internal/service/chat"
	"nexmart-chat-backend/internal/service/chatbot"
	shoppersvc "nexmart-chat-backend/internal/service/shopper"
)

type testChatStore struct {
	mu       sync.Mutex
	sessions map[string]model.ChatSessionItem
}

func newTestChatStore() *testChatStore {
	return &testChatStore{sessions: make(map[string]model.ChatSessionItem)}
}

func (m *testChatStore) SaveSession(ctx context.Context, session model.ChatSessionItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.SessionID] = session
	return nil
}

func (m *testChatStore) GetSession(ctx context.Context, sessionID string) (model.ChatSessionItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[sessionID]
	if !ok {
		return model.ChatSessionItem{}, chatsvc.ErrSessionNotFound
	}
	return session, nil
}

func (m *testChatStore) DeleteSession(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

type recordingResolver struct {
	mu      sync.Mutex
	lastCtx chatbot.Context
}

func (s *recordingResolver) Resolve(ctx context.Context, utterance string, chatCtx chatbot.Context) chatbot.Response {
	s.mu.Lock()
	s.lastCtx = chatCtx
	s.mu.Unlock()
	return chatbot.Response{
		Type:       chatbot.ResponseTypeText,
		MessageKey: chatbot.KeyGreeting,
	}
}

func setupChatHandler(t *testing.T, resolver chatsvc.Resolver, shopperSvc *shoppersvc.Service) (http.Handler, func()) {
	t.Helper()

	chatService := chatsvc.NewWithClock(newTestChatStore(), resolver, nil, fixedTime)
	paths := ChatPaths{
		SessionsPath:  "/api/public/v1/chat/sessions",
		SessionPrefix: "/api/public/v1/chat/sessions/",
	}
	chatEndpoints := NewChatEndpoints(chatService, shopperSvc, nil, paths)

	server, cleanup := newTestServer(t)

	mux := http.NewServeMux()
	mux.HandleFunc(paths.SessionsPath, server.MakeHTTPHandleFunc(chatEndpoints.Sessions))
	mux.HandleFunc(paths.SessionPrefix, server.MakeHTTPHandleFunc(chatEndpoints.SessionOps))
	mux.HandleFunc("/api/public/v1/chat/suggestions", server.MakeHTTPHandleFunc(chatEndpoints.Suggestions))

	return mux, cleanup
}

func TestChatSessionLifecycle(t *testing.T) {
	setupTestJWT(t)
	shopperSvc := shoppersvc.NewWithRepository(newTestShopperRepo(), fixedTime)
	resolver := &recordingResolver{}

	handler, cleanup := setupChatHandler(t, resolver, shopperSvc)
	defer cleanup()

	started := doJSONRequest[dto.StartSessionResponse](t, handler, http.MethodPost, "/api/public/v1/chat/sessions", nil, nil, http.StatusCreated)
	if started.SessionID == "" {
		t.Fatal("expected a session id")
	}
	if len(started.Messages) != 1 || started.Messages[0].Sender != model.ChatSenderBot {
		t.Fatalf("expected a single seeded bot message, got %+v", started.Messages)
	}

	sent := doJSONRequest[dto.SendMessageResponse](t, handler, http.MethodPost, "/api/public/v1/chat/sessions/"+started.SessionID+"/messages", dto.SendMessageRequest{
		Body: "hi",
	}, nil, http.StatusOK)

	if sent.UserMessage.Body != "hi" {
		t.Fatalf("unexpected user message %+v", sent.UserMessage)
	}
	var response chatbot.Response
	if err := json.Unmarshal(sent.BotMessage.Response, &response); err != nil {
		t.Fatalf("unmarshal bot response: %v", err)
	}
	if response.MessageKey != chatbot.KeyGreeting {
		t.Fatalf("unexpected bot message key %s", response.MessageKey)
	}

	history := doJSONRequest[dto.SessionHistoryResponse](t, handler, http.MethodGet, "/api/public/v1/chat/sessions/"+started.SessionID+"/messages", nil, nil, http.StatusOK)
	if len(history.Messages) != 3 {
		t.Fatalf("expected welcome + user + bot, got %d messages", len(history.Messages))
	}

	doJSONRequest[struct{}](t, handler, http.MethodDelete, "/api/public/v1/chat/sessions/"+started.SessionID, nil, nil, http.StatusNoContent)
	doJSONRequest[api.ApiError](t, handler, http.MethodGet, "/api/public/v1/chat/sessions/"+started.SessionID+"/messages", nil, nil, http.StatusNotFound)
}

func TestChatMessageCarriesLoginContext(t *testing.T) {
	setupTestJWT(t)
	shopperSvc := shoppersvc.NewWithRepository(newTestShopperRepo(), fixedTime)
	resolver := &recordingResolver{}

	handler, cleanup := setupChatHandler(t, resolver, shopperSvc)
	defer cleanup()

	result, err := shopperSvc.Register(context.Background(), shoppersvc.RegisterParams{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register shopper: %v", err)
	}

	started := doJSONRequest[dto.StartSessionResponse](t, handler, http.MethodPost, "/api/public/v1/chat/sessions", nil, nil, http.StatusCreated)

	doJSONRequest[dto.SendMessageResponse](t, handler, http.MethodPost, "/api/public/v1/chat/sessions/"+started.SessionID+"/messages", dto.SendMessageRequest{
		Body:    "where is my order",
		Context: dto.ChatContextPayload{CurrentRoute: "/orders", CartItemsCount: 2},
	}, map[string]string{"Authorization": "Bearer " + result.Tokens.AccessToken}, http.StatusOK)

	if !resolver.lastCtx.IsLoggedIn {
		t.Fatal("expected resolver context to be logged in")
	}
	if resolver.lastCtx.ShopperID != result.Shopper.ShopperID {
		t.Fatalf("expected shopper id %s, got %s", result.Shopper.ShopperID, resolver.lastCtx.ShopperID)
	}
	if resolver.lastCtx.CartItemsCount != 2 || resolver.lastCtx.CurrentRoute != "/orders" {
		t.Fatalf("widget context not forwarded: %+v", resolver.lastCtx)
	}

	// A bad token degrades to anonymous instead of rejecting.
	doJSONRequest[dto.SendMessageResponse](t, handler, http.MethodPost, "/api/public/v1/chat/sessions/"+started.SessionID+"/messages", dto.SendMessageRequest{
		Body: "hello again",
	}, map[string]string{"Authorization": "Bearer garbage"}, http.StatusOK)

	if resolver.lastCtx.IsLoggedIn {
		t.Fatal("expected anonymous context for an invalid token")
	}
}

func TestChatMessageValidation(t *testing.T) {
	setupTestJWT(t)
	shopperSvc := shoppersvc.NewWithRepository(newTestShopperRepo(), fixedTime)

	handler, cleanup := setupChatHandler(t, &recordingResolver{}, shopperSvc)
	defer cleanup()

	started := doJSONRequest[dto.StartSessionResponse](t, handler, http.MethodPost, "/api/public/v1/chat/sessions", nil, nil, http.StatusCreated)

	doJSONRequest[api.ApiError](t, handler, http.MethodPost, "/api/public/v1/chat/sessions/"+started.SessionID+"/messages", dto.SendMessageRequest{
		Body: "   ",
	}, nil, http.StatusBadRequest)

	doJSONRequest[api.ApiError](t, handler, http.MethodPost, "/api/public/v1/chat/sessions/chat_missing/messages", dto.SendMessageRequest{
		Body: "hello",
	}, nil, http.StatusNotFound)
}

func TestChatSuggestions(t *testing.T) {
	setupTestJWT(t)
	shopperSvc := shoppersvc.NewWithRepository(newTestShopperRepo(), fixedTime)

	handler, cleanup := setupChatHandler(t, &recordingResolver{}, shopperSvc)
	defer cleanup()

	resp := doJSONRequest[dto.SuggestionsResponse](t, handler, http.MethodGet, "/api/public/v1/chat/suggestions", nil, nil, http.StatusOK)
	if len(resp.Suggestions) != len(quickSuggestions) {
		t.Fatalf("expected %d suggestions, got %d", len(quickSuggestions), len(resp.Suggestions))
	}
	for _, suggestion := range resp.Suggestions {
		if suggestion.LabelKey == "" || suggestion.Utterance == "" {
			t.Fatalf("incomplete suggestion %+v", suggestion)
		}
	}
}
