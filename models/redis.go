package models

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var RedisClient *redis.Client

// InitRedis wires the optional store-list cache. The app runs identically
// without Redis; a nil client means every explorer view hits the backend.
func InitRedis() {
	redisURL := os.Getenv("REDIS_URL")

	var opt *redis.Options
	if redisURL != "" {
		parsedOpt, err := redis.ParseURL(redisURL)
		if err != nil {
			logrus.WithError(err).Warn("Failed to parse Redis URL, running without cache")
			return
		}
		opt = parsedOpt
	} else {
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			logrus.Info("REDIS_ADDR not set, running without cache")
			return
		}
		opt = &redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
		}
	}

	RedisClient = redis.NewClient(opt)

	if _, err := RedisClient.Ping(context.Background()).Result(); err != nil {
		logrus.WithError(err).Warn("Redis connection failed, running without cache")
		RedisClient = nil
		return
	}

	logrus.Info("Redis connected")
}

func CloseRedis() {
	if RedisClient != nil {
		RedisClient.Close()
	}
}
