package progression

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	lockKeyPrefix           = "trainprogress-lock||"
	DefaultLockTTL          = 10 * time.Second
	DefaultLockWait         = 5 * time.Second
	defaultLockRetryBackoff = 50 * time.Millisecond
)

var ErrLockTimeout = errors.New("timed out waiting for user lock")

// Locker serialises writers of the same user.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// LocalLocker is an in-process keyed mutex.
type LocalLocker struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{
		locks: make(map[string]*lockEntry),
	}
}

func (l *LocalLocker) Lock(_ context.Context, key string) (func(), error) {
	l.mu.Lock()
	entry, ok := l.locks[key]
	if !ok {
		entry = &lockEntry{}
		l.locks[key] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			entry.mu.Unlock()
			l.mu.Lock()
			entry.refs--
			if entry.refs == 0 {
				delete(l.locks, key)
			}
			l.mu.Unlock()
		})
	}, nil
}

// held is the number of keys currently locked or waited on.
func (l *LocalLocker) held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end
`)

// RedisLocker is a lease based lock shared by all service instances.
// The lease expires after TTL even if the holder never releases it.
type RedisLocker struct {
	redisClient  *redis.Client
	ttl          time.Duration
	wait         time.Duration
	retryBackoff time.Duration
	// ability to inject the lease token generator (for unit testing)
	TokenFunc func() string
}

func NewRedisLocker(redisClient *redis.Client, ttl, wait time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = DefaultLockTTL
	}
	if wait <= 0 {
		wait = DefaultLockWait
	}
	return &RedisLocker{
		redisClient:  redisClient,
		ttl:          ttl,
		wait:         wait,
		retryBackoff: defaultLockRetryBackoff,
		TokenFunc:    uuid.NewString,
	}
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	lockKey := lockKeyPrefix + key
	token := l.TokenFunc()

	waitCtx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	retry := time.NewTicker(l.retryBackoff)
	defer retry.Stop()

	for {
		acquired, err := l.redisClient.SetNX(waitCtx, lockKey, token, l.ttl).Result()
		if err != nil {
			if errors.Is(waitCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
				return nil, fmt.Errorf("%w: %s", ErrLockTimeout, key)
			}
			return nil, fmt.Errorf("acquire lock %s: %w", key, err)
		}
		if acquired {
			break
		}

		select {
		case <-waitCtx.Done():
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("%w: %s", ErrLockTimeout, key)
		case <-retry.C:
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// the request context may be gone already, the lease still has to be released
			releaseCtx, releaseCancel := context.WithTimeout(context.Background(), time.Second)
			defer releaseCancel()
			if err := releaseScript.Run(releaseCtx, l.redisClient, []string{lockKey}, token).Err(); err != nil {
				log.Errorf("release lock %s: %s", key, err)
			}
		})
	}, nil
}
