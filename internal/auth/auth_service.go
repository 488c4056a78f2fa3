package auth

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	autherrors "hrboard/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const sessionKeyPrefix = "hr:session:"

type Service interface {
	Login(ctx context.Context, email, password string) (token string, session Session, err error)
	Logout(ctx context.Context, sessionID string) error
	Me(ctx context.Context, sessionID string) (Session, error)
	// Resolve parses a session token and loads the live session behind it.
	Resolve(ctx context.Context, token string) (Session, error)
}

type service struct {
	rdb      *redis.Client
	secret   []byte
	ttl      time.Duration
	accounts map[string]account
	logger   *zap.Logger
}

func NewService(rdb *redis.Client, secret string, ttl time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	accounts := make(map[string]account, len(demoCredentials))
	for _, cred := range demoCredentials {
		hash, err := bcrypt.GenerateFromPassword([]byte(cred.Password), bcrypt.DefaultCost)
		if err != nil {
			// Only reachable on an invalid cost constant.
			panic(err)
		}
		accounts[cred.Email] = account{
			Email:        cred.Email,
			Name:         cred.Name,
			Role:         cred.Role,
			passwordHash: hash,
		}
	}

	return &service{
		rdb:      rdb,
		secret:   []byte(secret),
		ttl:      ttl,
		accounts: accounts,
		logger:   l,
	}
}

func (s *service) Login(ctx context.Context, email, password string) (string, Session, error) {
	acct, ok := s.accounts[strings.ToLower(email)]
	if !ok {
		return "", Session{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(password)); err != nil {
		return "", Session{}, autherrors.ErrInvalidCredentials
	}

	session := Session{
		ID:    uuid.New().String(),
		Email: acct.Email,
		Name:  acct.Name,
		Role:  acct.Role,
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return "", Session{}, err
	}
	if err := s.rdb.Set(ctx, sessionKeyPrefix+session.ID, payload, s.ttl).Err(); err != nil {
		return "", Session{}, err
	}

	token, err := s.generateToken(session.ID)
	if err != nil {
		return "", Session{}, err
	}

	s.logger.Info("session opened",
		zap.String("session_id", session.ID),
		zap.String("role", session.Role),
	)
	return token, session, nil
}

func (s *service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.rdb.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		s.logger.Warn("session delete failed", zap.String("session_id", sessionID), zap.Error(err))
		return err
	}
	return nil
}

func (s *service) Me(ctx context.Context, sessionID string) (Session, error) {
	val, err := s.rdb.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return Session{}, autherrors.ErrSessionNotFound
	}
	if err != nil {
		return Session{}, err
	}

	var session Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		// Malformed persisted state: treat as absent.
		s.logger.Warn("discarding malformed session record", zap.String("session_id", sessionID))
		return Session{}, autherrors.ErrSessionNotFound
	}
	return session, nil
}

func (s *service) Resolve(ctx context.Context, token string) (Session, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		if err != nil && strings.Contains(err.Error(), "expired") {
			return Session{}, autherrors.ErrTokenExpired
		}
		return Session{}, autherrors.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, autherrors.ErrInvalidToken
	}
	sessionID, ok := claims["session_id"].(string)
	if !ok || sessionID == "" {
		return Session{}, autherrors.ErrInvalidToken
	}

	return s.Me(ctx, sessionID)
}

func (s *service) generateToken(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"exp":        time.Now().Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
