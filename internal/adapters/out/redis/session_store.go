// Package redis keeps WhatsApp bot conversations in Redis so any replica
// can answer the next webhook delivery of a chat.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/ports"
	"pharmacy/internal/pkg/errs"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

const dependency = "redis"

// Config holds the connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// SessionStore implements ports.SessionStore with one JSON value per chat
// user. Expiry is handled by Redis.
type SessionStore struct {
	client *redis.Client
	prefix string
}

var _ ports.SessionStore = (*SessionStore)(nil)

// NewSessionStore connects and pings the server.
func NewSessionStore(ctx context.Context, cfg Config) (*SessionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "failed to connect to Redis")
	}

	return &SessionStore{client: client, prefix: "chat:session:"}, nil
}

func (s *SessionStore) key(user kernel.Phone) string {
	return fmt.Sprintf("%s%s", s.prefix, user)
}

func (s *SessionStore) Load(ctx context.Context, user kernel.Phone) (ports.ChatSession, error) {
	data, err := s.client.Get(ctx, s.key(user)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ports.ChatSession{}, nil
		}
		return ports.ChatSession{}, errs.NewDependencyFailureError(dependency,
			errors.Wrap(err, "failed to get session from Redis"))
	}

	var session ports.ChatSession
	if err = json.Unmarshal(data, &session); err != nil {
		return ports.ChatSession{}, errs.NewDependencyFailureError(dependency,
			errors.Wrap(err, "failed to unmarshal session"))
	}
	return session, nil
}

func (s *SessionStore) Save(ctx context.Context, user kernel.Phone, session ports.ChatSession, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to marshal session")
	}

	if err = s.client.Set(ctx, s.key(user), data, ttl).Err(); err != nil {
		return errs.NewDependencyFailureError(dependency, errors.Wrap(err, "failed to set session in Redis"))
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, user kernel.Phone) error {
	if err := s.client.Del(ctx, s.key(user)).Err(); err != nil {
		return errs.NewDependencyFailureError(dependency, errors.Wrap(err, "failed to delete session from Redis"))
	}
	return nil
}

// Ping reports whether the server answers. Used by the health check.
func (s *SessionStore) Ping(ctx context.Context) error {
	return errors.Wrap(s.client.Ping(ctx).Err(), "redis ping")
}

// Close closes the Redis connection.
func (s *SessionStore) Close() error {
	return s.client.Close()
}
