package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DateLocker serializes the availability-recheck-then-persist sequence for a
// single appointment date. Two concurrent submissions for the same date
// cannot both pass the recheck while one holds the lock.
type DateLocker interface {
	Lock(ctx context.Context, date string) (Unlocker, error)
}

type Unlocker interface {
	Unlock(ctx context.Context)
}

const (
	lockTTL       = 5 * time.Second
	retryInterval = 50 * time.Millisecond
)

// Lua compare-and-delete so a slow caller cannot release a lock a later
// caller has since acquired.
var releaseScript = redis.NewScript(`
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	end
	return 0
`)

type RedisLocker struct {
	client *redis.Client
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{client: client}
}

func (l *RedisLocker) Lock(ctx context.Context, date string) (Unlocker, error) {
	key := "booking:lock:" + date
	token := uuid.New().String()

	for {
		ok, err := l.client.SetNX(ctx, key, token, lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire date lock: %w", err)
		}
		if ok {
			return &redisUnlocker{client: l.client, key: key, token: token}, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("failed to acquire date lock: %w", ctx.Err())
		case <-time.After(retryInterval):
		}
	}
}

type redisUnlocker struct {
	client *redis.Client
	key    string
	token  string
}

func (u *redisUnlocker) Unlock(ctx context.Context) {
	// Best effort: the TTL reclaims the lock if the release is lost.
	_ = releaseScript.Run(ctx, u.client, []string{u.key}, u.token).Err()
}
