package database

import (
	"admission-backend/src/logger"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// NewAsynqClient shares the Redis connection with the rest of the process.
// It returns nil when Redis is not available.
func NewAsynqClient(rdb *redis.Client) *asynq.Client {
	if rdb == nil {
		logger.Warn().Msg("⚠️ Redis not available. Asynq client will not be initialized.")
		return nil
	}
	client := asynq.NewClientFromRedisClient(rdb)
	logger.Info().Msg("✅ Asynq Client initialized successfully")
	return client
}
