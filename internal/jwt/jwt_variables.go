package jwt

import (
	"time"

	"github.com/go-redis/redis/v8"

	"nexmart-chat-backend/internal/env"
)

var RedisClient *redis.Client

const RefreshTokenTTL = 24 * 30 * time.Hour

const (
	RoleShopper Role = iota
)

var RoleSecrets = map[Role]string{}

// Init loads the signing secret and connects the refresh-token store. The
// server mains call it after env.MustValidate; tests populate RoleSecrets
// directly instead.
func Init() {
	RoleSecrets[RoleShopper] = env.MustGet(env.ShopperSecretKey)

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     env.Get(env.AuthRedisURL),
		Password: env.Get(env.AuthRedisPass),
		DB:       0,
	})
}
