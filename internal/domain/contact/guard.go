package contact

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ReleaseFunc frees a guard acquired with Guard.Acquire.
type ReleaseFunc func(ctx context.Context) error

// Guard keeps a key from being submitted twice at the same time, possibly
// across several server instances. Acquire fails fast with
// ErrSubmissionInFlight when the key is held.
type Guard interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (ReleaseFunc, error)
}

// MemoryGuard is a single-process Guard.
type MemoryGuard struct {
	mu   sync.Mutex
	held map[string]memoryHold
	now  func() time.Time
}

type memoryHold struct {
	token   string
	expires time.Time
}

func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{
		held: make(map[string]memoryHold),
		now:  time.Now,
	}
}

func (g *MemoryGuard) Acquire(_ context.Context, key string, ttl time.Duration) (ReleaseFunc, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if h, ok := g.held[key]; ok && now.Before(h.expires) {
		return nil, ErrSubmissionInFlight
	}

	token := uuid.NewString()
	g.held[key] = memoryHold{token: token, expires: now.Add(ttl)}

	return func(context.Context) error {
		g.mu.Lock()
		defer g.mu.Unlock()
		if h, ok := g.held[key]; ok && h.token == token {
			delete(g.held, key)
		}
		return nil
	}, nil
}

// releaseScript deletes the key only if we still own it.
const releaseScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end
`

// RedisGuard implements Guard with SET NX PX.
type RedisGuard struct {
	client *redis.Client
	prefix string
}

func NewRedisGuard(client *redis.Client, prefix string) *RedisGuard {
	return &RedisGuard{
		client: client,
		prefix: prefix,
	}
}

func (g *RedisGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (ReleaseFunc, error) {
	lockKey := g.prefix + "submit:" + key
	token := uuid.NewString()

	ok, err := g.client.SetNX(ctx, lockKey, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("redis error acquiring submission guard: %w", err)
	}
	if !ok {
		return nil, ErrSubmissionInFlight
	}

	return func(ctx context.Context) error {
		return g.client.Eval(ctx, releaseScript, []string{lockKey}, token).Err()
	}, nil
}
