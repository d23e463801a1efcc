package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	AppEnv         string
	Port           string
	BackendURL     string
	BackendTimeout time.Duration
	SessionSecret  string
	SessionTTL     time.Duration
	MaxUploadSize  int64
	AuthRatePerMin int
	AuthRateBurst  int
	StoreCacheTTL  time.Duration
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env file not found, using system environment variables")
	}

	maxUploadSize, _ := strconv.ParseInt(os.Getenv("MAX_UPLOAD_SIZE"), 10, 64)
	if maxUploadSize == 0 {
		maxUploadSize = 5242880
	}

	ratePerMin, _ := strconv.Atoi(getEnv("AUTH_RATE_PER_MIN", "10"))
	rateBurst, _ := strconv.Atoi(getEnv("AUTH_RATE_BURST", "5"))

	AppConfig = &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("APP_PORT", getEnv("PORT", "3000")),
		BackendURL:     getEnv("BACKEND_URL", "http://localhost:4000"),
		BackendTimeout: getDuration("BACKEND_TIMEOUT", 15*time.Second),
		SessionSecret:  getEnv("SESSION_SECRET", "secret"),
		SessionTTL:     getDuration("SESSION_TTL", 7*24*time.Hour),
		MaxUploadSize:  maxUploadSize,
		AuthRatePerMin: ratePerMin,
		AuthRateBurst:  rateBurst,
		StoreCacheTTL:  getDuration("STORE_CACHE_TTL", time.Minute),
	}

	logrus.WithFields(logrus.Fields{
		"env":     AppConfig.AppEnv,
		"port":    AppConfig.Port,
		"backend": AppConfig.BackendURL,
	}).Info("Configuration loaded")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
