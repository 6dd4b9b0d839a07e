// Package revocation keeps ids of signed-out session tokens until they expire.
package revocation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrStorage ошибка хранилища отозванных токенов
var ErrStorage = errors.New("revocation.store: storage error")

const keyPrefix = "limpme:revoked:"

// RedisStore хранит отозванные jti до истечения срока токена
type RedisStore struct {
	client redis.UniversalClient
	now    func() time.Time
}

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client, now: time.Now}
}

// Revoke помечает токен отозванным до момента until
func (s *RedisStore) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := until.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, keyPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("%w: Revoke - %v", ErrStorage, err)
	}
	return nil
}

func (s *RedisStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, keyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("%w: IsRevoked - %v", ErrStorage, err)
	}
	return n > 0, nil
}

// MemoryStore отозванные токены в памяти процесса
type MemoryStore struct {
	mu      sync.Mutex
	now     func() time.Time
	revoked map[string]time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now, revoked: make(map[string]time.Time)}
}

func (s *MemoryStore) Revoke(_ context.Context, tokenID string, until time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, exp := range s.revoked {
		if now.After(exp) {
			delete(s.revoked, id)
		}
	}
	if until.After(now) {
		s.revoked[tokenID] = until
	}
	return nil
}

func (s *MemoryStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp, ok := s.revoked[tokenID]
	return ok && s.now().Before(exp), nil
}
