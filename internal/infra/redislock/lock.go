package redislock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLockNotAcquired возвращается, когда блокировка занята другим процессом
var ErrLockNotAcquired = errors.New("redislock: lock not acquired")

// releaseScript удаляет ключ только если токен совпадает:
// чужую блокировку (после истечения TTL своей) снять нельзя
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`

// Locker блокировка на одном ключе Redis через SETNX с токеном владельца
type Locker struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewLocker создает блокировку для указанного ключа
func NewLocker(client *redis.Client, key string, ttl time.Duration) *Locker {
	return &Locker{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

// WithLock выполняет fn под блокировкой. Если блокировка занята,
// возвращает ErrLockNotAcquired не дожидаясь освобождения.
func (l *Locker) WithLock(ctx context.Context, fn func(ctx context.Context) error) error {
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		return fmt.Errorf("redislock: acquire %s: %w", l.key, err)
	}
	if !ok {
		return ErrLockNotAcquired
	}

	defer func() {
		_ = l.client.Eval(ctx, releaseScript, []string{l.key}, token).Err()
	}()

	return fn(ctx)
}
