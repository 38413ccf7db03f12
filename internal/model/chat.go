package model

import "encoding/json"

const (
	ChatSenderUser = "user"
	ChatSenderBot  = "bot"
)

// Chat sessions live in Redis as JSON blobs, not in DynamoDB, so these
// items carry json tags instead of dynamodbav.
type ChatSessionItem struct {
	SessionID string            `json:"sessionId"`
	ShopperID string            `json:"shopperId,omitempty"`
	Messages  []ChatMessageItem `json:"messages"`
	CreatedAt string            `json:"createdAt"`
	UpdatedAt string            `json:"updatedAt"`
}

type ChatMessageItem struct {
	MessageID string          `json:"messageId"`
	Sender    string          `json:"sender"`
	Body      string          `json:"body,omitempty"`
	Response  json.RawMessage `json:"response,omitempty"`
	CreatedAt string          `json:"createdAt"`
}
