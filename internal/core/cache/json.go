package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// errNilValue 让空结果穿透缓存：命中不了的 id 不落 redis，
// 否则刚注册（或 id 复用）的用户会被缓存住的旧 miss 挡到 TTL 过期
var errNilValue = errors.New("cache: nil value")

func GetOrLoadJSON[T any](
	c *Cache,
	ctx context.Context,
	key string,
	ttl time.Duration,
	load func(ctx context.Context) (*T, error),
) (*T, error) {
	b, err := c.GetOrLoad(ctx, key, ttl, func(ctx context.Context) ([]byte, error) {
		v, e := load(ctx)
		if e != nil {
			return nil, e
		}
		if v == nil {
			return nil, errNilValue
		}
		return json.Marshal(v)
	})
	if errors.Is(err, errNilValue) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out T
	if e := json.Unmarshal(b, &out); e != nil {
		return nil, e
	}
	return &out, nil
}
