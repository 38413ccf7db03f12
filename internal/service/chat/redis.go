package chat

import (
	"github.com/go-redis/redis/v8"

	"nexmart-chat-backend/internal/env"
)

// NewRedisClientFromEnv connects the chat session store. Separate from the
// refresh-token Redis so the two can be scaled and flushed independently.
func NewRedisClientFromEnv() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     env.Get(env.ChatRedisURL),
		Password: env.Get(env.ChatRedisPass),
		DB:       0,
	})
}
