package employee

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const optionsKeyPrefix = "employees:options:"

func OptionsKey(companyID string) string {
	return optionsKeyPrefix + companyID
}

// OptionsCache keeps the per-company employee picker list in Redis.
// A nil client turns every call into a miss.
type OptionsCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewOptionsCache(rdb *redis.Client, logger ...*zap.Logger) *OptionsCache {
	l := zap.L().Named("employee.options_cache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.options_cache")
	}
	return &OptionsCache{rdb: rdb, ttl: time.Hour, logger: l}
}

func (c *OptionsCache) Get(ctx context.Context, companyID string) ([]EmployeeOption, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, OptionsKey(companyID)).Result()
	if err != nil {
		return nil, false
	}
	var opts []EmployeeOption
	if err := json.Unmarshal([]byte(raw), &opts); err != nil {
		return nil, false
	}
	return opts, true
}

func (c *OptionsCache) Set(ctx context.Context, companyID string, opts []EmployeeOption) {
	if c == nil || c.rdb == nil {
		return
	}
	payload, err := json.Marshal(opts)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, OptionsKey(companyID), string(payload), c.ttl).Err(); err != nil {
		c.logger.Warn("cache employee options failed", zap.String("company_id", companyID), zap.Error(err))
	}
}

func (c *OptionsCache) Invalidate(ctx context.Context, companyID string) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, OptionsKey(companyID)).Err(); err != nil {
		c.logger.Error("invalidate employee options failed",
			zap.String("key", OptionsKey(companyID)),
			zap.Error(err),
		)
	}
}
