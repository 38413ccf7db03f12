package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"nexmart-chat-backend/internal/model"
)

var ErrSessionNotFound = errors.New("chat store: session not found")

const (
	sessionKeyPrefix = "chatsession:"
	sessionTTL       = 7 * 24 * time.Hour

	// Oldest messages are dropped past this point so a chatty session
	// cannot grow a Redis value without bound.
	maxSessionMessages = 200
)

type Store interface {
	SaveSession(ctx context.Context, session model.ChatSessionItem) error
	GetSession(ctx context.Context, sessionID string) (model.ChatSessionItem, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

func (s *RedisStore) SaveSession(ctx context.Context, session model.ChatSessionItem) error {
	if len(session.Messages) > maxSessionMessages {
		session.Messages = session.Messages[len(session.Messages)-maxSessionMessages:]
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("chat store: marshal session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(session.SessionID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("chat store: save session: %w", err)
	}
	return nil
}

func (s *RedisStore) GetSession(ctx context.Context, sessionID string) (model.ChatSessionItem, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.ChatSessionItem{}, ErrSessionNotFound
		}
		return model.ChatSessionItem{}, fmt.Errorf("chat store: get session: %w", err)
	}

	var session model.ChatSessionItem
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return model.ChatSessionItem{}, fmt.Errorf("chat store: unmarshal session: %w", err)
	}
	return session, nil
}

func (s *RedisStore) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("chat store: delete session: %w", err)
	}
	return nil
}
