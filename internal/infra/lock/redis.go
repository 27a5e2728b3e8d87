package lock

import (
	"context"
	"log/slog"
	"time"

	"cinemaplus/internal/pkg/config"
	"cinemaplus/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "cinemaplus:job:"

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisLocker struct {
	client *redis.Client
}

func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "failed to ping redis")
	}
	return client, nil
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{client: client}
}

// TryLock acquires cinemaplus:job:<name> with SET NX PX. ok is false when another
// holder owns the key; release is then a no-op.
func (l *RedisLocker) TryLock(ctx context.Context, name string, ttl time.Duration) (func(context.Context), bool, error) {
	key := keyPrefix + name
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return noop, false, errs.Wrapf(err, "failed to acquire lock %s", key)
	}
	if !ok {
		return noop, false, nil
	}

	release := func(ctx context.Context) {
		if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
			slog.Warn("failed to release job lock", "key", key, "error", err.Error())
		}
	}
	return release, true, nil
}

// LocalLocker is used when no Redis address is configured; every lock is granted.
type LocalLocker struct{}

func (LocalLocker) TryLock(context.Context, string, time.Duration) (func(context.Context), bool, error) {
	return noop, true, nil
}

func noop(context.Context) {}
