package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type Storage struct {
	Connection *redis.Client
}

func New(ctx context.Context, addr string) (*Storage, error) {
	conn := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if _, err := conn.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Storage{Connection: conn}, nil
}

func (that *Storage) Close() error {
	return that.Connection.Close()
}
