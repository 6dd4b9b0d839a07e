package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/LimpMe-BookingService/internal/domain"
)

const keyPrefix = "limpme:draft:"

// RedisStore хранит черновики в Redis в виде JSON с TTL.
// TTL продлевается при каждом сохранении.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisStore(client redis.UniversalClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, userID string) (*domain.Draft, error) {
	raw, err := s.client.Get(ctx, keyPrefix+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - %v", ErrStorage, err)
	}

	var d domain.Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("%w: Get - %v", ErrDecode, err)
	}
	return &d, nil
}

func (s *RedisStore) Save(ctx context.Context, userID string, d *domain.Draft) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("%w: Save - %v", ErrEncode, err)
	}
	if err := s.client.Set(ctx, keyPrefix+userID, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - %v", ErrStorage, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, keyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("%w: Delete - %v", ErrStorage, err)
	}
	return nil
}
