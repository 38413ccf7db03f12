package jwt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt"

	"nexmart-chat-backend/utils"
)

func appendRoleChar(token string, role Role) string {
	switch role {
	case RoleShopper:
		return token + "1"
	}
	return token
}

func expectedRoleChar(role Role) string {
	switch role {
	case RoleShopper:
		return "1"
	}
	return ""
}

func CreateToken(shopper Shopper, role Role, validUntil int64) (string, error) {
	secret, ok := RoleSecrets[role]
	if !ok || secret == "" {
		return "", fmt.Errorf("no secret configured for role")
	}

	if validUntil == 0 {
		now := time.Now()
		validUntil = now.Add(time.Minute * 15).Unix()
	}

	claims := jwt.MapClaims{
		"id":    shopper.Id,
		"email": shopper.Email,
		"exp":   validUntil,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return appendRoleChar(tokenString, role), nil
}

func CreateTokenWithRefresh(shopper Shopper, role Role, validUntil int64) (TokenResponse, error) {
	accessToken, err := CreateToken(shopper, role, validUntil)
	if err != nil {
		return TokenResponse{}, err
	}

	if RedisClient == nil {
		return TokenResponse{}, fmt.Errorf("refresh token store not initialised")
	}

	refreshTokenRaw := utils.CreateToken()
	refreshToken := appendRoleChar(refreshTokenRaw, role)

	shopperData := map[string]string{
		"id":    shopper.Id,
		"email": shopper.Email,
	}
	shopperDataJSON, _ := json.Marshal(shopperData)

	err = RedisClient.Set(context.Background(), refreshTokenRaw, shopperDataJSON, RefreshTokenTTL).Err()
	if err != nil {
		return TokenResponse{}, err
	}

	return TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ParseToken validates an access token, including the trailing role char.
func ParseToken(tokenString string, role Role) (jwt.MapClaims, error) {
	if len(tokenString) == 0 {
		return nil, fmt.Errorf("token string is empty")
	}

	if tokenString[len(tokenString)-1:] != expectedRoleChar(role) {
		return nil, fmt.Errorf("invalid role character in token")
	}
	tokenString = tokenString[:len(tokenString)-1]

	secret, ok := RoleSecrets[role]
	if !ok || secret == "" {
		return nil, fmt.Errorf("no secret configured for role")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("unauthorized: %v", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is not valid - unauthorized")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("claims of unauthorized type")
	}

	return claims, nil
}

// RefreshToken exchanges a refresh token for a new access token. The refresh
// token stays valid until its TTL runs out or InvalidateRefreshToken is called.
func RefreshToken(refreshToken string, role Role) (string, error) {
	if len(refreshToken) == 0 {
		return "", fmt.Errorf("refresh token is empty")
	}
	if refreshToken[len(refreshToken)-1:] != expectedRoleChar(role) {
		return "", fmt.Errorf("invalid role character in refresh token")
	}
	refreshTokenRaw := refreshToken[:len(refreshToken)-1]

	if RedisClient == nil {
		return "", fmt.Errorf("refresh token store not initialised")
	}

	val, err := RedisClient.Get(context.Background(), refreshTokenRaw).Result()
	if err == redis.Nil {
		return "", fmt.Errorf("invalid refresh token")
	} else if err != nil {
		return "", err
	}

	var shopperData map[string]string
	if err := json.Unmarshal([]byte(val), &shopperData); err != nil {
		return "", fmt.Errorf("invalid token data")
	}

	shopper := Shopper{
		Id:    shopperData["id"],
		Email: shopperData["email"],
	}

	return CreateToken(shopper, role, 0)
}

func InvalidateRefreshToken(refreshToken string, role Role) error {
	if len(refreshToken) == 0 {
		return fmt.Errorf("refresh token is empty")
	}
	if refreshToken[len(refreshToken)-1:] != expectedRoleChar(role) {
		return fmt.Errorf("invalid role character in refresh token")
	}
	refreshTokenRaw := refreshToken[:len(refreshToken)-1]

	if RedisClient == nil {
		return fmt.Errorf("refresh token store not initialised")
	}

	return RedisClient.Del(context.Background(), refreshTokenRaw).Err()
}
