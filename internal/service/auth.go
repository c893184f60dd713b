package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/diet-service/internal/domain/dto"
)

var (
	// ErrInvalidCredentials is returned when login credentials do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned when a token fails validation.
	ErrInvalidToken = errors.New("invalid token")
)

// StaffClaims are the JWT claims issued to an authenticated staff member.
type StaffClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Auth defines the staff authentication operations.
type Auth interface {
	Login(ctx context.Context, username, password string) (*dto.TokenResponse, error)
	ValidateToken(ctx context.Context, token string) (*StaffClaims, error)
}

// AuthService implements Auth against a single configured staff credential.
// The service runs with auth disabled by default; this exists for deployments
// that expose the API beyond the hospital network.
type AuthService struct {
	secret       []byte
	tokenTTL     time.Duration
	username     string
	passwordHash string
}

// NewAuthService creates an AuthService. passwordHash must be a bcrypt hash.
func NewAuthService(secret string, tokenTTL time.Duration, username, passwordHash string) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 15 * time.Minute
	}
	return &AuthService{
		secret:       []byte(secret),
		tokenTTL:     tokenTTL,
		username:     username,
		passwordHash: passwordHash,
	}
}

// Login verifies the credentials and issues a signed token.
func (s *AuthService) Login(_ context.Context, username, password string) (*dto.TokenResponse, error) {
	if username != s.username {
		// burn a comparison anyway to keep timing uniform
		_ = bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	claims := StaffClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: signed, ExpiresIn: int64(s.tokenTTL.Seconds())}, nil
}

// ValidateToken parses and verifies a token, returning its claims.
func (s *AuthService) ValidateToken(_ context.Context, tokenString string) (*StaffClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &StaffClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*StaffClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// HashPassword produces a bcrypt hash for configuration bootstrapping.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
