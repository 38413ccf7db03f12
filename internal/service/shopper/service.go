package shopper

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"nexmart-chat-backend/internal/database"
	internaljwt "nexmart-chat-backend/internal/jwt"
	"nexmart-chat-backend/internal/model"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

var createTokenWithRefresh = internaljwt.CreateTokenWithRefresh

func SetTokenIssuer(issuer func(internaljwt.Shopper, internaljwt.Role, int64) (internaljwt.TokenResponse, error)) {
	if issuer == nil {
		createTokenWithRefresh = internaljwt.CreateTokenWithRefresh
		return
	}
	createTokenWithRefresh = issuer
}

func New(db *database.Database) *Service {
	return &Service{
		repo: NewDynamoRepository(db),
		now:  time.Now,
	}
}

func NewWithRepository(repo Repository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}

	return &Service{
		repo: repo,
		now:  now,
	}
}

func (s *Service) Register(ctx context.Context, params RegisterParams) (AuthResult, error) {
	email := normalizeEmail(params.Email)
	password := strings.TrimSpace(params.Password)
	name := strings.TrimSpace(params.Name)

	if email == "" || password == "" || name == "" {
		return AuthResult{}, newError(ErrorCodeValidation, "missing required fields", nil)
	}

	_, err := s.repo.FindShopperByEmail(ctx, email)
	if err == nil {
		return AuthResult{}, newError(ErrorCodeConflict, "email already registered", nil)
	}
	if !errors.Is(err, ErrNotFound) {
		return AuthResult{}, newError(ErrorCodeInternal, "failed to check existing shopper", err)
	}

	newShopper, err := internaljwt.NewShopper(internaljwt.RegisterShopper{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return AuthResult{}, newError(ErrorCodeInternal, "failed to prepare shopper", err)
	}
	newShopper.Id = uuid.NewString()

	item := model.ShopperItem{
		ShopperID:    newShopper.Id,
		Email:        email,
		Name:         name,
		PasswordHash: newShopper.PasswordHash,
		CreatedAt:    s.now().UTC().Format(time.RFC3339),
	}

	if err := s.repo.CreateShopper(ctx, item); err != nil {
		return AuthResult{}, newError(ErrorCodeInternal, "failed to save shopper", err)
	}

	tokens, err := createTokenWithRefresh(newShopper, internaljwt.RoleShopper, 0)
	if err != nil {
		return AuthResult{}, newError(ErrorCodeInternal, "failed to issue tokens", err)
	}

	return AuthResult{
		Shopper: item,
		Tokens:  tokens,
	}, nil
}

func (s *Service) Login(ctx context.Context, params LoginParams) (AuthResult, error) {
	email := normalizeEmail(params.Email)
	password := strings.TrimSpace(params.Password)

	if email == "" || password == "" {
		return AuthResult{}, newError(ErrorCodeValidation, "missing required fields", nil)
	}

	item, err := s.repo.FindShopperByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return AuthResult{}, newError(ErrorCodeUnauthorized, "invalid credentials", nil)
		}
		return AuthResult{}, newError(ErrorCodeInternal, "failed to fetch shopper", err)
	}

	if !internaljwt.ValidatePassword(item.PasswordHash, password) {
		return AuthResult{}, newError(ErrorCodeUnauthorized, "invalid credentials", nil)
	}

	jwtShopper := internaljwt.Shopper{
		Id:           item.ShopperID,
		Email:        item.Email,
		PasswordHash: item.PasswordHash,
	}

	tokens, err := createTokenWithRefresh(jwtShopper, internaljwt.RoleShopper, 0)
	if err != nil {
		return AuthResult{}, newError(ErrorCodeInternal, "failed to issue tokens", err)
	}

	return AuthResult{
		Shopper: item,
		Tokens:  tokens,
	}, nil
}

func (s *Service) Profile(ctx context.Context, identity Identity) (ProfileResult, error) {
	shopperID := strings.TrimSpace(identity.ShopperID)
	if shopperID == "" {
		return ProfileResult{}, newError(ErrorCodeUnauthorized, "invalid shopper identity", nil)
	}

	item, err := s.repo.GetShopper(ctx, shopperID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ProfileResult{}, newError(ErrorCodeNotFound, "shopper not found", err)
		}
		return ProfileResult{}, newError(ErrorCodeInternal, "failed to fetch shopper", err)
	}

	return ProfileResult{Shopper: item}, nil
}

func (s *Service) IdentityFromAuthorizationHeader(header string) (Identity, error) {
	authHeader := strings.TrimSpace(header)
	if authHeader == "" {
		return Identity{}, newError(ErrorCodeUnauthorized, "missing authorization header", nil)
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return Identity{}, newError(ErrorCodeUnauthorized, "invalid authorization header format", nil)
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return s.identityFromToken(token)
}

func (s *Service) identityFromToken(token string) (Identity, error) {
	if token == "" {
		return Identity{}, newError(ErrorCodeUnauthorized, "empty token", nil)
	}

	claims, err := internaljwt.ParseToken(token, internaljwt.RoleShopper)
	if err != nil {
		return Identity{}, newError(ErrorCodeUnauthorized, "invalid token", err)
	}

	shopperID, _ := claims["id"].(string)
	email, _ := claims["email"].(string)

	if shopperID == "" {
		return Identity{}, newError(ErrorCodeUnauthorized, "token missing identifiers", nil)
	}

	return Identity{
		ShopperID: shopperID,
		Email:     email,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
