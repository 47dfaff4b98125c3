package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// EnvCache keeps per-area environment snapshots with a short TTL so the
// risk pipeline and the public environment endpoint don't hammer the
// provider. A miss returns (nil, nil).
type EnvCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewEnvCache(r *Redis, ttl time.Duration) *EnvCache {
	return &EnvCache{client: r.Client, ttl: ttl}
}

func envKey(area string) string {
	return "env:snapshot:" + area
}

func (c *EnvCache) Get(ctx context.Context, area string) (*domain.EnvironmentSnapshot, error) {
	data, err := c.client.Get(ctx, envKey(area)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var snap domain.EnvironmentSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (c *EnvCache) Set(ctx context.Context, snap *domain.EnvironmentSnapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, envKey(snap.Area), b, c.ttl).Err()
}
