package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"nexmart-chat-backend/internal/dto"
	"nexmart-chat-backend/internal/model"
	chatsvc "nexmart-chat-backend/internal/service/chat"
	"nexmart-chat-backend/internal/service/chatbot"
	shoppersvc "nexmart-chat-backend/internal/service/shopper"
	"nexmart-chat-backend/internal/websocket"
)

// quickSuggestions are the quick-chip prompts the widget renders under the
// composer. Labels are i18n keys resolved client-side.
var quickSuggestions = []dto.Suggestion{
	{LabelKey: "chat.suggestions.topDeals", Utterance: "Show me today's top deals"},
	{LabelKey: "chat.suggestions.trackOrder", Utterance: "Track my order"},
	{LabelKey: "chat.suggestions.shipping", Utterance: "What are the shipping options?"},
	{LabelKey: "chat.suggestions.electronics", Utterance: "Show me electronics"},
	{LabelKey: "chat.suggestions.help", Utterance: "Help"},
}

type ChatEndpoints interface {
	Sessions(http.ResponseWriter, *http.Request) error
	SessionOps(http.ResponseWriter, *http.Request) error
	Suggestions(http.ResponseWriter, *http.Request) error
	Websocket(http.ResponseWriter, *http.Request) error
}

type ChatPaths struct {
	SessionsPath    string
	SessionPrefix   string
	WebsocketPrefix string
}

type chatEndpoints struct {
	chat    *chatsvc.Service
	shopper *shoppersvc.Service
	handler *websocket.Handler
	paths   ChatPaths
}

func NewChatEndpoints(chat *chatsvc.Service, shopper *shoppersvc.Service, handler *websocket.Handler, paths ChatPaths) ChatEndpoints {
	return &chatEndpoints{
		chat:    chat,
		shopper: shopper,
		handler: handler,
		paths:   paths,
	}
}

func (h *chatEndpoints) Sessions(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodPost: h.handleStartSession,
	})
}

func (h *chatEndpoints) SessionOps(w http.ResponseWriter, r *http.Request) error {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, h.paths.SessionPrefix), "/")
	segments := strings.Split(rest, "/")

	switch {
	case len(segments) == 1 && segments[0] != "":
		return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
			http.MethodDelete: func(w http.ResponseWriter, r *http.Request) error {
				return h.handleClearSession(w, r, segments[0])
			},
		})
	case len(segments) == 2 && segments[1] == "messages":
		return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
			http.MethodGet: func(w http.ResponseWriter, r *http.Request) error {
				return h.handleHistory(w, r, segments[0])
			},
			http.MethodPost: func(w http.ResponseWriter, r *http.Request) error {
				return h.handleSendMessage(w, r, segments[0])
			},
		})
	default:
		return &HTTPError{
			StatusCode: http.StatusNotFound,
			Message:    "Not found",
			ErrorLog:   fmt.Errorf("unknown chat path: %s", r.URL.Path),
		}
	}
}

func (h *chatEndpoints) Suggestions(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodGet: func(w http.ResponseWriter, r *http.Request) error {
			return WriteJSON(w, http.StatusOK, dto.SuggestionsResponse{Suggestions: quickSuggestions})
		},
	})
}

func (h *chatEndpoints) Websocket(w http.ResponseWriter, r *http.Request) error {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, h.paths.WebsocketPrefix), "/")
	segments := strings.Split(rest, "/")
	if len(segments) != 2 || segments[0] == "" || segments[1] != "ws" {
		return &HTTPError{
			StatusCode: http.StatusNotFound,
			Message:    "Not found",
			ErrorLog:   fmt.Errorf("unknown websocket path: %s", r.URL.Path),
		}
	}
	sessionID := segments[0]

	if _, err := h.chat.History(r.Context(), sessionID); err != nil {
		return h.serviceError(err)
	}

	clientID := ""
	if identity, ok := h.optionalIdentity(r); ok {
		clientID = identity.ShopperID
	}
	if clientID == "" {
		clientID = r.URL.Query().Get("clientId")
	}
	if clientID == "" {
		clientID = uuid.NewString()
	}

	h.handler.CreateRoom(sessionID)
	h.handler.JoinRoom(w, r, sessionID, clientID)
	return nil
}

func (h *chatEndpoints) handleStartSession(w http.ResponseWriter, r *http.Request) error {
	shopperID := ""
	if identity, ok := h.optionalIdentity(r); ok {
		shopperID = identity.ShopperID
	}

	session, err := h.chat.StartSession(r.Context(), shopperID)
	if err != nil {
		return h.serviceError(err)
	}

	return WriteJSON(w, http.StatusCreated, dto.StartSessionResponse{
		SessionID: session.SessionID,
		Messages:  toChatMessages(session.Messages),
		CreatedAt: session.CreatedAt,
	})
}

func (h *chatEndpoints) handleSendMessage(w http.ResponseWriter, r *http.Request, sessionID string) error {
	var req dto.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return &HTTPError{
			StatusCode: http.StatusBadRequest,
			Message:    "Invalid request payload",
			ErrorLog:   fmt.Errorf("decode send message request: %w", err),
		}
	}

	chatCtx := chatbot.Context{
		CurrentRoute:   req.Context.CurrentRoute,
		CartItemsCount: req.Context.CartItemsCount,
		Language:       req.Context.Language,
	}
	if identity, ok := h.optionalIdentity(r); ok {
		chatCtx.IsLoggedIn = true
		chatCtx.ShopperID = identity.ShopperID
	}

	result, err := h.chat.SendMessage(r.Context(), sessionID, req.Body, chatCtx)
	if err != nil {
		return h.serviceError(err)
	}

	return WriteJSON(w, http.StatusOK, dto.SendMessageResponse{
		SessionID:   result.Session.SessionID,
		UserMessage: toChatMessage(result.UserMessage),
		BotMessage:  toChatMessage(result.BotMessage),
	})
}

func (h *chatEndpoints) handleHistory(w http.ResponseWriter, r *http.Request, sessionID string) error {
	session, err := h.chat.History(r.Context(), sessionID)
	if err != nil {
		return h.serviceError(err)
	}

	return WriteJSON(w, http.StatusOK, dto.SessionHistoryResponse{
		SessionID: session.SessionID,
		Messages:  toChatMessages(session.Messages),
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	})
}

func (h *chatEndpoints) handleClearSession(w http.ResponseWriter, r *http.Request, sessionID string) error {
	if err := h.chat.ClearSession(r.Context(), sessionID); err != nil {
		return h.serviceError(err)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// optionalIdentity reports the shopper behind the bearer token when one is
// present and valid. The chat endpoints never reject on a bad token, they
// just treat the caller as anonymous.
func (h *chatEndpoints) optionalIdentity(r *http.Request) (shoppersvc.Identity, bool) {
	if ExtractTokenFromHeaders(r) == "" {
		return shoppersvc.Identity{}, false
	}
	identity, err := h.shopper.IdentityFromAuthorizationHeader(r.Header.Get("Authorization"))
	if err != nil {
		return shoppersvc.Identity{}, false
	}
	return identity, true
}

func (h *chatEndpoints) serviceError(err error) error {
	if err == nil {
		return nil
	}

	svcErr, ok := err.(*chatsvc.Error)
	if !ok {
		return &HTTPError{
			StatusCode: http.StatusInternalServerError,
			Message:    "Internal server error",
			ErrorLog:   fmt.Errorf("chat service: %w", err),
		}
	}

	var errorLog error
	if svcErr.Err != nil {
		errorLog = fmt.Errorf("%s: %w", svcErr.Message, svcErr.Err)
	} else {
		errorLog = svcErr
	}

	switch svcErr.Code {
	case chatsvc.ErrorCodeValidation:
		return &HTTPError{
			StatusCode: http.StatusBadRequest,
			Message:    svcErr.Message,
			ErrorLog:   errorLog,
		}
	case chatsvc.ErrorCodeNotFound:
		return &HTTPError{
			StatusCode: http.StatusNotFound,
			Message:    svcErr.Message,
			ErrorLog:   errorLog,
		}
	default:
		return &HTTPError{
			StatusCode: http.StatusInternalServerError,
			Message:    "Internal server error",
			ErrorLog:   errorLog,
		}
	}
}

func toChatMessages(messages []model.ChatMessageItem) []dto.ChatMessage {
	resp := make([]dto.ChatMessage, 0, len(messages))
	for _, message := range messages {
		resp = append(resp, toChatMessage(message))
	}
	return resp
}

func toChatMessage(message model.ChatMessageItem) dto.ChatMessage {
	return dto.ChatMessage{
		MessageID: message.MessageID,
		Sender:    message.Sender,
		Body:      message.Body,
		Response:  message.Response,
		CreatedAt: message.CreatedAt,
	}
}
