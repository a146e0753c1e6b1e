package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"iamove/internal/cache"
	"iamove/internal/domain"
)

// SessionStore persists quiz sessions between answer submissions.
type SessionStore interface {
	Save(ctx context.Context, session *domain.QuizSession) error
	// Get returns (nil, nil) when the session does not exist or has expired.
	Get(ctx context.Context, sessionID string) (*domain.QuizSession, error)
	Delete(ctx context.Context, sessionID string) error
}

type redisSessionStore struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewRedisSessionStore creates a SessionStore backed by domain.Cache.
func NewRedisSessionStore(c domain.Cache, ttl time.Duration) SessionStore {
	return &redisSessionStore{cache: c, ttl: ttl}
}

func (s *redisSessionStore) Save(ctx context.Context, session *domain.QuizSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return domain.NewInternalError("Failed to marshal quiz session", err)
	}
	if err := s.cache.Set(ctx, cache.QuizSessionKey(session.ID), string(data), s.ttl); err != nil {
		return domain.NewInternalError("Failed to save quiz session", err)
	}
	return nil
}

func (s *redisSessionStore) Get(ctx context.Context, sessionID string) (*domain.QuizSession, error) {
	data, err := s.cache.Get(ctx, cache.QuizSessionKey(sessionID))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, nil
		}
		return nil, domain.NewInternalError("Failed to load quiz session", err)
	}
	var session domain.QuizSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, domain.NewInternalError("Failed to unmarshal quiz session", err)
	}
	return &session, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.cache.Delete(ctx, cache.QuizSessionKey(sessionID)); err != nil {
		return domain.NewInternalError("Failed to delete quiz session", err)
	}
	return nil
}
