package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "limpme:lock:"

// Снимаем блокировку, только если она все еще наша
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker блокировки на SET NX с токеном владельца.
// Работает между несколькими инстансами сервиса.
type RedisLocker struct {
	client redis.UniversalClient
}

func NewRedisLocker(client redis.UniversalClient) *RedisLocker {
	return &RedisLocker{client: client}
}

// Acquire захватывает key на ttl. Возвращает функцию освобождения.
func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func() error, error) {
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, keyPrefix+key, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: Acquire - %v", ErrStorage, err)
	}
	if !ok {
		return nil, ErrLocked
	}

	release := func() error {
		// контекст запроса к этому моменту может быть отменен
		deleted, err := releaseScript.Run(context.Background(), l.client, []string{keyPrefix + key}, token).Int()
		if err != nil {
			return fmt.Errorf("%w: Release - %v", ErrStorage, err)
		}
		if deleted == 0 {
			return ErrNotHeld
		}
		return nil
	}
	return release, nil
}
