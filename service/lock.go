// file: service/lock.go

package service

import (
	"context"
	"go-transactions-api/logger"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SeedLocker serialises seed runs. TryLock reports false when another run
// holds the lock; the returned release func must be called exactly once.
type SeedLocker interface {
	TryLock(ctx context.Context) (release func(), ok bool, err error)
}

// ILockClient is the subset of the Redis client the seed lock needs.
type ILockClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

const seedLockKey = "transactions:seed:lock"

// releaseScript deletes the key only if it still holds our token, so a lock
// that expired and was taken by another instance is left alone.
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

// RedisSeedLocker shares the seed lock between every instance using the same Redis.
type RedisSeedLocker struct {
	client ILockClient
	ttl    time.Duration
}

func NewRedisSeedLocker(client ILockClient, ttl time.Duration) *RedisSeedLocker {
	return &RedisSeedLocker{client: client, ttl: ttl}
}

func (l *RedisSeedLocker) TryLock(ctx context.Context) (func(), bool, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, seedLockKey, token, l.ttl).Result()
	if err != nil || !ok {
		return nil, false, err
	}

	release := func() {
		// The request context may already be cancelled by the time we release.
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := l.client.Eval(ctx, releaseScript, []string{seedLockKey}, token).Err(); err != nil {
			logger.Log.WithError(err).WithField("key", seedLockKey).Warn("Failed to release seed lock, it is held until its TTL expires")
		}
	}
	return release, true, nil
}

// LocalSeedLocker is used when Redis is disabled; it only guards this process.
type LocalSeedLocker struct {
	mu sync.Mutex
}

func NewLocalSeedLocker() *LocalSeedLocker {
	return &LocalSeedLocker{}
}

func (l *LocalSeedLocker) TryLock(ctx context.Context) (func(), bool, error) {
	if !l.mu.TryLock() {
		return nil, false, nil
	}
	return l.mu.Unlock, true, nil
}
