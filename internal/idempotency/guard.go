// Package idempotency de-duplicates checkout requests carrying an
// Idempotency-Key header.
package idempotency

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/MikeMC777/shop-api/internal/config"
)

// ErrInProgress means another request holds the key and has not finished.
var ErrInProgress = errors.New("request with this idempotency key is in progress")

const (
	pending = "pending"
	keyTTL  = 24 * time.Hour
)

// Guard tracks keys through pending -> done(result) or release.
type Guard interface {
	// Begin claims key. If the key already completed it returns the stored
	// result and done=true; if it is still pending it returns ErrInProgress.
	Begin(ctx context.Context, key string) (result int, done bool, err error)
	Complete(ctx context.Context, key string, result int) error
	Release(ctx context.Context, key string) error
}

// Nop lets every request through.
type Nop struct{}

func (Nop) Begin(context.Context, string) (int, bool, error) { return 0, false, nil }
func (Nop) Complete(context.Context, string, int) error      { return nil }
func (Nop) Release(context.Context, string) error            { return nil }

type RedisGuard struct {
	client *redis.Client
	prefix string
}

func NewRedisGuard(cfg config.RedisConfig) *RedisGuard {
	return &RedisGuard{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		prefix: "idem:checkout:",
	}
}

func (g *RedisGuard) Ping(ctx context.Context) error { return g.client.Ping(ctx).Err() }

func (g *RedisGuard) Close() error { return g.client.Close() }

func (g *RedisGuard) Begin(ctx context.Context, key string) (int, bool, error) {
	k := g.prefix + key
	ok, err := g.client.SetNX(ctx, k, pending, keyTTL).Result()
	if err != nil {
		return 0, false, fmt.Errorf("claim idempotency key: %w", err)
	}
	if ok {
		return 0, false, nil
	}
	val, err := g.client.Get(ctx, k).Result()
	if errors.Is(err, redis.Nil) {
		// expired between SETNX and GET; treat as a fresh claim attempt
		return g.Begin(ctx, key)
	}
	if err != nil {
		return 0, false, fmt.Errorf("read idempotency key: %w", err)
	}
	return decode(val)
}

func (g *RedisGuard) Complete(ctx context.Context, key string, result int) error {
	return g.client.Set(ctx, g.prefix+key, strconv.Itoa(result), keyTTL).Err()
}

func (g *RedisGuard) Release(ctx context.Context, key string) error {
	return g.client.Del(ctx, g.prefix+key).Err()
}

func decode(val string) (int, bool, error) {
	if val == pending {
		return 0, false, ErrInProgress
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt idempotency value %q", val)
	}
	return n, true, nil
}

// Memory is an in-process Guard with the same semantics as RedisGuard.
type Memory struct {
	mu   sync.Mutex
	keys map[string]string
}

func NewMemory() *Memory { return &Memory{keys: map[string]string{}} }

func (m *Memory) Begin(_ context.Context, key string) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.keys[key]
	if !ok {
		m.keys[key] = pending
		return 0, false, nil
	}
	return decode(val)
}

func (m *Memory) Complete(_ context.Context, key string, result int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys[key] = strconv.Itoa(result)
	return nil
}

func (m *Memory) Release(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keys, key)
	return nil
}
