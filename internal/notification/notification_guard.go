package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const passGuardTTL = 36 * time.Hour

// PassGuard lets one scheduler replica claim a pass per company per day.
type PassGuard interface {
	Acquire(ctx context.Context, kind Kind, companyID string, date time.Time) (bool, error)
}

func PassKey(kind Kind, companyID string, date time.Time) string {
	return fmt.Sprintf("outtime:pass:%s:%s:%s", kind, companyID, date.Format(time.DateOnly))
}

type RedisPassGuard struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisPassGuard(rdb *redis.Client) *RedisPassGuard {
	return &RedisPassGuard{rdb: rdb, ttl: passGuardTTL}
}

func (g *RedisPassGuard) Acquire(ctx context.Context, kind Kind, companyID string, date time.Time) (bool, error) {
	return g.rdb.SetNX(ctx, PassKey(kind, companyID, date), 1, g.ttl).Result()
}

// MemoryPassGuard serves a single replica running without Redis.
type MemoryPassGuard struct {
	mu   sync.Mutex
	seen map[string]time.Time
}

func NewMemoryPassGuard() *MemoryPassGuard {
	return &MemoryPassGuard{seen: make(map[string]time.Time)}
}

func (g *MemoryPassGuard) Acquire(_ context.Context, kind Kind, companyID string, date time.Time) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for k, d := range g.seen {
		if date.Sub(d) > passGuardTTL {
			delete(g.seen, k)
		}
	}
	key := PassKey(kind, companyID, date)
	if _, ok := g.seen[key]; ok {
		return false, nil
	}
	g.seen[key] = date
	return true, nil
}
