package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

// Init connects to Redis. The cache is optional: on failure the client stays
// nil and every helper becomes a no-op.
func Init(addr string) {
	if addr == "" {
		slog.Info("redis not configured, caching disabled")
		return
	}

	Client = redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unreachable, continuing without cache", "error", err)
		Client = nil
		return
	}
	slog.Info("redis connected", "addr", addr)
}

func Close() {
	if Client != nil {
		_ = Client.Close()
	}
}
