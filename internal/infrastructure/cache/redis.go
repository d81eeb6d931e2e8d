package cache

import (
	"context"
	"fmt"
	"time"

	"go-doctor-directory/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const pingTimeout = 5 * time.Second

// NewRedisClient connects to the queue counter store and checks it answers
func NewRedisClient(cfg config.RedisConfig, log *logrus.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis at %s:%s: %w", cfg.Host, cfg.Port, err)
	}

	log.Infof("Successfully connected to Redis at %s:%s (db %d)", cfg.Host, cfg.Port, cfg.DB)

	return client, nil
}
