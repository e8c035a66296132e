// Package session provides access to the persisted bearer token shared by all
// enquiry forms. The token is written by the external login flow; this package
// only reads it and clears it when the backend rejects it.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"

	"egs-enquiry/internal/common/database"
)

// ErrNoToken is returned when no bearer token is stored.
var ErrNoToken = errors.New("no session token")

// TokenStore is the read/clear surface the submission pipeline depends on.
// Setting a token belongs to the login flow, which is out of scope here, but
// Set is provided so embedders and tests can seed a session.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// RedisStore persists the token in Redis under a fixed storage key.
type RedisStore struct {
	client *database.RedisClient
	key    string
}

func NewRedisStore(client *database.RedisClient, storageKey string) *RedisStore {
	return &RedisStore{client: client, key: storageKey}
}

func (s *RedisStore) Token(ctx context.Context) (string, error) {
	val, err := s.client.Get(ctx, s.key)
	if err == redis.Nil {
		return "", ErrNoToken
	}
	if err != nil {
		return "", err
	}
	if val == "" {
		return "", ErrNoToken
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, token string) error {
	return s.client.Set(ctx, s.key, token, 0)
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key)
}

// MemoryStore keeps the token in process memory. Used when embedding the
// pipeline without Redis and as the default in tests.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", ErrNoToken
	}
	return s.token, nil
}

func (s *MemoryStore) Set(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
