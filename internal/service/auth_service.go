package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"coachdiag/internal/config"
	"coachdiag/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService issues coach tokens and per-session respondent tokens
type AuthService struct {
	coachUsername string
	coachPassword string
	jwtSecret     []byte
	sessionTTL    time.Duration
}

func NewAuthService(cfg config.AuthConfig) *AuthService {
	return &AuthService{
		coachUsername: cfg.CoachUsername,
		coachPassword: cfg.CoachPassword,
		jwtSecret:     []byte(cfg.JWTSecret),
		sessionTTL:    cfg.SessionTokenTTL,
	}
}

// Login validates coach credentials. An empty configured password disables
// coach login entirely.
func (s *AuthService) Login(username, password string) (*model.LoginResponse, error) {
	if s.coachPassword == "" ||
		subtle.ConstantTimeCompare([]byte(username), []byte(s.coachUsername)) != 1 ||
		subtle.ConstantTimeCompare([]byte(password), []byte(s.coachPassword)) != 1 {
		return nil, ErrInvalidCredentials
	}

	coachID := "coach_" + uuid.New().String()[:8]
	now := time.Now()

	claims := &model.CoachClaims{
		CoachID: coachID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(12 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:   tokenString,
		CoachID: coachID,
	}, nil
}

func (s *AuthService) ValidateCoachToken(tokenString string) (*model.CoachClaims, error) {
	claims := &model.CoachClaims{}
	if err := s.parse(tokenString, claims); err != nil || claims.CoachID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GenerateSessionToken creates a token that only unlocks one diagnosis session
func (s *AuthService) GenerateSessionToken(sessionID, userID string) (string, error) {
	now := time.Now()
	claims := &model.SessionClaims{
		SessionID: sessionID,
		UserID:    userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) ValidateSessionToken(tokenString string) (*model.SessionClaims, error) {
	claims := &model.SessionClaims{}
	if err := s.parse(tokenString, claims); err != nil || claims.SessionID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *AuthService) parse(tokenString string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return ErrInvalidToken
	}
	return nil
}
