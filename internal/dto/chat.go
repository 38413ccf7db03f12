package dto

import "encoding/json"

type ChatMessage struct {
	MessageID string          `json:"messageId"`
	Sender    string          `json:"sender"`
	Body      string          `json:"body,omitempty"`
	Response  json.RawMessage `json:"response,omitempty"`
	CreatedAt string          `json:"createdAt"`
}

type StartSessionResponse struct {
	SessionID string        `json:"sessionId"`
	Messages  []ChatMessage `json:"messages"`
	CreatedAt string        `json:"createdAt"`
}

type SessionHistoryResponse struct {
	SessionID string        `json:"sessionId"`
	Messages  []ChatMessage `json:"messages"`
	CreatedAt string        `json:"createdAt"`
	UpdatedAt string        `json:"updatedAt"`
}

// ChatContextPayload mirrors the widget's view of the storefront at the
// moment the message was sent. isLoggedIn is derived server-side from the
// bearer token, never trusted from the payload.
type ChatContextPayload struct {
	CurrentRoute   string `json:"currentRoute,omitempty"`
	CartItemsCount int    `json:"cartItemsCount,omitempty"`
	Language       string `json:"language,omitempty"`
}

type SendMessageRequest struct {
	Body    string             `json:"body"`
	Context ChatContextPayload `json:"context,omitempty"`
}

type SendMessageResponse struct {
	SessionID   string      `json:"sessionId"`
	UserMessage ChatMessage `json:"userMessage"`
	BotMessage  ChatMessage `json:"botMessage"`
}

type Suggestion struct {
	LabelKey  string `json:"label"`
	Utterance string `json:"utterance"`
}

type SuggestionsResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}
