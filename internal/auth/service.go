package auth

import (
	"errors"
	"fmt"
	"time"

	"matchday-backend/internal/database/models"
	"matchday-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL is how long an issued token stays valid
const TokenTTL = 24 * time.Hour

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`

	jwt.RegisteredClaims `swaggerignore:"true"`
}

// AuthService issues and validates tokens and mirrors token identities into
// the users table
type AuthService struct {
	secret   []byte
	userRepo repository.UserRepositoryInterface
}

// NewAuthService creates a new auth service
func NewAuthService(secret string, userRepo repository.UserRepositoryInterface) (*AuthService, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	return &AuthService{secret: []byte(secret), userRepo: userRepo}, nil
}

// GenerateJWT creates a signed token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	claims := &AuthClaims{
		UserID: user.ID.String(),
		Name:   user.Name,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   user.ID.String(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT parses and verifies a token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// EnsureUser mirrors the token identity into the users table so foreign keys
// always have a row to point at. Name and email follow the token on change.
func (s *AuthService) EnsureUser(claims *AuthClaims) (uuid.UUID, error) {
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id in token: %w", err)
	}
	user := &models.User{
		BaseModel: models.BaseModel{ID: userID},
		Name:      claims.Name,
		Email:     claims.Email,
	}
	if err := s.userRepo.Upsert(user); err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	return userID, nil
}
