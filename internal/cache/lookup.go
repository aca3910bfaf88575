package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/umalmyha/fleetcases/internal/model"
	"github.com/vmihailenco/msgpack/v5"
)

const defaultLookupTimeToLive = 10 * time.Minute

type redisLookupCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisLookupCache(client *redis.Client, ttl time.Duration) LookupCache {
	if ttl <= 0 {
		ttl = defaultLookupTimeToLive
	}
	return &redisLookupCache{client: client, ttl: ttl}
}

func (r *redisLookupCache) FindCaseType(ctx context.Context, code string) (*model.CaseType, error) {
	var ct model.CaseType
	found, err := r.get(ctx, caseTypeKey(code), &ct)
	if err != nil || !found {
		return nil, err
	}
	return &ct, nil
}

func (r *redisLookupCache) CacheCaseType(ctx context.Context, ct *model.CaseType) error {
	return r.set(ctx, caseTypeKey(ct.Code), ct)
}

func (r *redisLookupCache) FindStatusCode(ctx context.Context, code int) (*model.StatusCode, error) {
	var sc model.StatusCode
	found, err := r.get(ctx, statusCodeKey(code), &sc)
	if err != nil || !found {
		return nil, err
	}
	return &sc, nil
}

func (r *redisLookupCache) CacheStatusCode(ctx context.Context, sc *model.StatusCode) error {
	return r.set(ctx, statusCodeKey(sc.Code), sc)
}

func (r *redisLookupCache) get(ctx context.Context, key string, v any) (bool, error) {
	res, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	if err := msgpack.Unmarshal([]byte(res), v); err != nil {
		return false, err
	}
	return true, nil
}

func (r *redisLookupCache) set(ctx context.Context, key string, v any) error {
	encoded, err := msgpack.Marshal(v)
	if err != nil {
		return err
	}

	if _, err := r.client.SetNX(ctx, key, encoded, r.ttl).Result(); err != nil {
		return err
	}
	return nil
}

func caseTypeKey(code string) string {
	return fmt.Sprintf("lookup:case-type:%s", code)
}

func statusCodeKey(code int) string {
	return fmt.Sprintf("lookup:status-code:%d", code)
}
