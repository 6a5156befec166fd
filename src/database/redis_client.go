package database

import (
	"context"
	"fmt"
	"strings"

	"admission-backend/src/logger"

	"github.com/redis/go-redis/v9"
)

// RedisOptions accepts a redis:// URL or a bare host:port address.
func RedisOptions(uri, password string) (*redis.Options, error) {
	if strings.Contains(uri, "://") {
		opt, err := redis.ParseURL(uri)
		if err != nil {
			return nil, fmt.Errorf("parse redis uri: %w", err)
		}
		if password != "" {
			opt.Password = password
		}
		return opt, nil
	}
	return &redis.Options{Addr: uri, Password: password, DB: 0}, nil
}

// ConnectRedis builds a client and pings it.
func ConnectRedis(ctx context.Context, uri, password string) (*redis.Client, error) {
	opt, err := RedisOptions(uri, password)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	logger.Info().Str("addr", opt.Addr).Msg("✅ Redis connected successfully")
	return client, nil
}
