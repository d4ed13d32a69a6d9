package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

type profile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// redis 指到一个连不上的地址：Get 永远 miss，Set 失败被忽略，
// 正好能单测回源逻辑本身
func newOfflineCache() *Cache {
	return New("127.0.0.1:1", "", 0)
}

func TestGetOrLoadJSON_LoadsValue(t *testing.T) {
	t.Parallel()
	c := newOfflineCache()

	got, err := GetOrLoadJSON[profile](c, context.Background(), "user:profile:1", time.Minute,
		func(ctx context.Context) (*profile, error) {
			return &profile{FirstName: "A", LastName: "B"}, nil
		})
	if err != nil {
		t.Fatalf("GetOrLoadJSON error: %v", err)
	}
	if got == nil || got.FirstName != "A" || got.LastName != "B" {
		t.Fatalf("unexpected value: %+v", got)
	}
}

func TestGetOrLoadJSON_NilResultNotCached(t *testing.T) {
	t.Parallel()
	c := newOfflineCache()

	calls := 0
	load := func(ctx context.Context) (*profile, error) {
		calls++
		return nil, nil
	}

	for i := 0; i < 2; i++ {
		got, err := GetOrLoadJSON[profile](c, context.Background(), "user:profile:404", time.Minute, load)
		if err != nil {
			t.Fatalf("GetOrLoadJSON error: %v", err)
		}
		if got != nil {
			t.Fatalf("expected nil for a miss, got %+v", got)
		}
	}
	// 空结果不进缓存，每次都要重新回源
	if calls != 2 {
		t.Fatalf("expected load to run twice, ran %d times", calls)
	}
}

func TestGetOrLoadJSON_LoadErrorPropagates(t *testing.T) {
	t.Parallel()
	c := newOfflineCache()

	boom := errors.New("storage down")
	_, err := GetOrLoadJSON[profile](c, context.Background(), "user:profile:2", time.Minute,
		func(ctx context.Context) (*profile, error) {
			return nil, boom
		})
	if !errors.Is(err, boom) {
		t.Fatalf("expected load error to propagate, got %v", err)
	}
}
