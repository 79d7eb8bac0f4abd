package config

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
)

const (
	defaultPort        = "8080"
	defaultEnvironment = "local"
)

// Config holds the process-wide settings supplied by the deployment platform.
// DatabaseURL, RedisAddr and RabbitMQURL are optional: when empty the service
// keeps its in-memory store, serves lists without a cache and drops events.
type Config struct {
	Port        string
	DatabaseURL string
	RedisAddr   string
	RabbitMQURL string
}

// Load reads the configuration from the environment once, at process start.
func Load() Config {
	return Config{
		Port:        getenv("PORT", defaultPort),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		RabbitMQURL: os.Getenv("RABBITMQ_URL"),
	}
}

// EnvironmentName returns the active deployment environment name. It is read
// on every call, not cached, so health responses track configuration changes.
func EnvironmentName() string {
	return getenv("ENVIRONMENT", defaultEnvironment)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
