package chat

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"nexmart-chat-backend/internal/model"
	"nexmart-chat-backend/internal/service/chatbot"
	"nexmart-chat-backend/utils"
)

type ErrorCode string

const (
	ErrorCodeValidation ErrorCode = "validation_error"
	ErrorCodeNotFound   ErrorCode = "not_found"
	ErrorCodeInternal   ErrorCode = "internal_error"
)

type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Resolver turns a shopper utterance into a structured assistant response.
type Resolver interface {
	Resolve(ctx context.Context, utterance string, chatCtx chatbot.Context) chatbot.Response
}

// PublishFunc pushes an assistant message to the websocket room of the
// session it belongs to. A nil publisher disables the push path.
type PublishFunc func(roomID string, payload interface{}) error

type SendMessageResult struct {
	Session     model.ChatSessionItem
	UserMessage model.ChatMessageItem
	BotMessage  model.ChatMessageItem
	Response    chatbot.Response
}

type Service struct {
	store    Store
	resolver Resolver
	publish  PublishFunc
	now      func() time.Time
}

func New(store Store, resolver Resolver, publish PublishFunc) *Service {
	return NewWithClock(store, resolver, publish, time.Now)
}

func NewWithClock(store Store, resolver Resolver, publish PublishFunc, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		store:    store,
		resolver: resolver,
		publish:  publish,
		now:      now,
	}
}

// StartSession creates a fresh session seeded with the assistant's welcome
// message.
func (s *Service) StartSession(ctx context.Context, shopperID string) (model.ChatSessionItem, error) {
	createdAt := s.now().UTC().Format(time.RFC3339)
	welcome := chatbot.Response{
		Type:       chatbot.ResponseTypeText,
		MessageKey: chatbot.KeyWelcome,
	}

	session := model.ChatSessionItem{
		SessionID: utils.GenerateSessionID(),
		ShopperID: strings.TrimSpace(shopperID),
		Messages:  []model.ChatMessageItem{s.botMessage(welcome, createdAt)},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	if err := s.store.SaveSession(ctx, session); err != nil {
		return model.ChatSessionItem{}, newError(ErrorCodeInternal, "failed to create chat session", err)
	}

	incMessage(model.ChatSenderBot)
	return session, nil
}

// SendMessage appends the shopper's message, resolves the assistant response
// and appends that too. The assistant message is also pushed to the session's
// websocket room so an open widget sees it without polling.
func (s *Service) SendMessage(ctx context.Context, sessionID, body string, chatCtx chatbot.Context) (SendMessageResult, error) {
	sessionID = strings.TrimSpace(sessionID)
	body = strings.TrimSpace(body)
	if sessionID == "" {
		return SendMessageResult{}, newError(ErrorCodeValidation, "sessionId is required", nil)
	}
	if body == "" {
		return SendMessageResult{}, newError(ErrorCodeValidation, "message body is required", nil)
	}

	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return SendMessageResult{}, newError(ErrorCodeNotFound, "chat session not found", err)
		}
		return SendMessageResult{}, newError(ErrorCodeInternal, "failed to load chat session", err)
	}

	now := s.now().UTC().Format(time.RFC3339)
	userMessage := model.ChatMessageItem{
		MessageID: uuid.NewString(),
		Sender:    model.ChatSenderUser,
		Body:      body,
		CreatedAt: now,
	}

	response := s.resolver.Resolve(ctx, body, chatCtx)
	botMessage := s.botMessage(response, now)

	session.Messages = append(session.Messages, userMessage, botMessage)
	session.UpdatedAt = now

	if err := s.store.SaveSession(ctx, session); err != nil {
		return SendMessageResult{}, newError(ErrorCodeInternal, "failed to save chat session", err)
	}

	incMessage(model.ChatSenderUser)
	incMessage(model.ChatSenderBot)

	if s.publish != nil {
		if err := s.publish(session.SessionID, botMessage); err != nil {
			// The HTTP response still carries the assistant message, so a
			// failed push is not fatal for the caller.
			incPublishFailure()
		}
	}

	return SendMessageResult{
		Session:     session,
		UserMessage: userMessage,
		BotMessage:  botMessage,
		Response:    response,
	}, nil
}

// History returns the stored session with its message log.
func (s *Service) History(ctx context.Context, sessionID string) (model.ChatSessionItem, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return model.ChatSessionItem{}, newError(ErrorCodeValidation, "sessionId is required", nil)
	}

	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return model.ChatSessionItem{}, newError(ErrorCodeNotFound, "chat session not found", err)
		}
		return model.ChatSessionItem{}, newError(ErrorCodeInternal, "failed to load chat session", err)
	}
	return session, nil
}

// ClearSession drops the session so the widget starts over on next open.
func (s *Service) ClearSession(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return newError(ErrorCodeValidation, "sessionId is required", nil)
	}
	if err := s.store.DeleteSession(ctx, sessionID); err != nil {
		return newError(ErrorCodeInternal, "failed to clear chat session", err)
	}
	return nil
}

func (s *Service) botMessage(response chatbot.Response, createdAt string) model.ChatMessageItem {
	payload, err := json.Marshal(response)
	if err != nil {
		payload, _ = json.Marshal(chatbot.Response{
			Type:       chatbot.ResponseTypeText,
			MessageKey: chatbot.KeyFallback,
		})
	}
	return model.ChatMessageItem{
		MessageID: uuid.NewString(),
		Sender:    model.ChatSenderBot,
		Response:  payload,
		CreatedAt: createdAt,
	}
}
