package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Locker serializes the check-and-write window for one doctor/slot pair.
// It is best-effort: the (doctor, slot) uniqueness constraint in the record
// store remains the authority, the lock just keeps concurrent bookings of
// the same slot from racing to the constraint.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// SlotKey names the lock for one doctor/slot pair.
func SlotKey(doctorID uint, start time.Time) string {
	return fmt.Sprintf("slot-lock:%d:%s", doctorID, start.UTC().Format("2006-01-02T15:04"))
}

// ===============================
// Redis
// ===============================

type RedisLocker struct {
	client *redis.Client
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{client: client}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return l.client.SetNX(ctx, key, "1", ttl).Result()
}

func (l *RedisLocker) Release(ctx context.Context, key string) error {
	return l.client.Del(ctx, key).Err()
}

// ===============================
// Nop
// ===============================

// NopLocker always grants the lock; used when no redis address is
// configured and in tests that exercise the constraint path directly.
type NopLocker struct{}

func (NopLocker) Acquire(context.Context, string, time.Duration) (bool, error) { return true, nil }
func (NopLocker) Release(context.Context, string) error                        { return nil }

var (
	_ Locker = (*RedisLocker)(nil)
	_ Locker = NopLocker{}
)
