// File: services/wizard/store.go
package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"estateconnect/models"

	"github.com/go-redis/redis/v8"
)

const (
	sessionPrefix = "wizardSession:"
	sessionTTL    = 24 * time.Hour
)

// SessionStore persists wizard sessions for the lifetime of a submission.
type SessionStore interface {
	Save(session *models.WizardSession) error
	Get(sessionID string) (*models.WizardSession, error)
	Touch(sessionID string) error
	Delete(sessionID string) error
}

// RedisSessionStore keeps wizard sessions in Redis with a TTL.
type RedisSessionStore struct {
	Client *redis.Client
}

// NewRedisSessionStore wraps a Redis client as a session store.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client}
}

// Save stores the session and resets its TTL.
func (s *RedisSessionStore) Save(session *models.WizardSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	ctx := context.Background()
	if err := s.Client.Set(ctx, sessionPrefix+session.ID, data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save wizard session: %w", err)
	}
	return nil
}

// Get retrieves a session; ErrSessionNotFound when expired or absent.
func (s *RedisSessionStore) Get(sessionID string) (*models.WizardSession, error) {
	ctx := context.Background()
	data, err := s.Client.Get(ctx, sessionPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to fetch wizard session: %w", err)
	}
	var session models.WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wizard session: %w", err)
	}
	return &session, nil
}

// Touch extends the session's TTL without modifying it.
func (s *RedisSessionStore) Touch(sessionID string) error {
	ctx := context.Background()
	ok, err := s.Client.Expire(ctx, sessionPrefix+sessionID, sessionTTL).Result()
	if err != nil {
		return fmt.Errorf("failed to extend wizard session: %w", err)
	}
	if !ok {
		return ErrSessionNotFound
	}
	return nil
}

// Delete removes a session.
func (s *RedisSessionStore) Delete(sessionID string) error {
	ctx := context.Background()
	return s.Client.Del(ctx, sessionPrefix+sessionID).Err()
}
