package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/quillhaven/moderation-backend/internal/common"
	"github.com/quillhaven/moderation-backend/internal/domain"
	"github.com/quillhaven/moderation-backend/internal/store"
	"github.com/quillhaven/moderation-backend/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// SessionStore tracks live operator sessions so sign-out revokes a token
// before its JWT expiry.
type SessionStore interface {
	Put(ctx context.Context, sessionID, operatorID string, ttl time.Duration) error
	Exists(ctx context.Context, sessionID string) (bool, error)
	Drop(ctx context.Context, sessionID string) error
}

// Claims is the console session token payload.
type Claims struct {
	jwt.RegisteredClaims
	OperatorID string `json:"operator_id"`
}

// Service is the capability gate in front of the console: admit or deny.
type Service struct {
	store    store.Client
	sessions SessionStore
	secret   []byte
	ttl      time.Duration
}

func NewService(st store.Client, sessions SessionStore, secret string, ttl time.Duration) *Service {
	return &Service{store: st, sessions: sessions, secret: []byte(secret), ttl: ttl}
}

// SignIn verifies the operator credential and issues a session token.
func (s *Service) SignIn(ctx context.Context, email, password string) (string, error) {
	var operators []domain.Operator
	if err := s.store.List(ctx, domain.Operator{}.TableName(), store.Filters{"email": email}, false, &operators); err != nil {
		return "", err
	}
	if len(operators) == 0 {
		return "", common.ErrInvalidCredentials
	}
	operator := operators[0]
	if err := bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(password)); err != nil {
		return "", common.ErrInvalidCredentials
	}

	sessionID := uuid.New().String()
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   operator.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		OperatorID: operator.ID,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", err
	}
	if err := s.sessions.Put(ctx, sessionID, operator.ID, s.ttl); err != nil {
		return "", err
	}
	opLog := logger.WithOperator(operator.ID)
	opLog.Info().Msg("operator signed in")
	return token, nil
}

func (s *Service) parse(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrExpiredToken
		}
		return nil, common.ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}

// IsAdmitted reports whether the token belongs to a live session.
func (s *Service) IsAdmitted(ctx context.Context, token string) bool {
	claims, err := s.parse(token)
	if err != nil {
		return false
	}
	alive, err := s.sessions.Exists(ctx, claims.ID)
	if err != nil {
		logger.Get().Error().Err(err).Msg("session lookup failed")
		return false
	}
	return alive
}

// OperatorID extracts the operator from a valid token, admitting or not.
func (s *Service) OperatorID(token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", err
	}
	return claims.OperatorID, nil
}

// SignOut drops the session; the JWT becomes useless immediately.
func (s *Service) SignOut(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return err
	}
	return s.sessions.Drop(ctx, claims.ID)
}
