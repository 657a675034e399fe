package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates application configuration values loaded from environment
// variables.
type Config struct {
	Env              string
	HTTPAddr         string
	FeedURL          string
	FeedPath         string
	FeedTimeout      time.Duration
	SyncOnStart      bool
	KafkaBrokers     []string
	KafkaTopicPrefix string
}

// Load parses configuration from the current environment.
func Load() (Config, error) {
	cfg := Config{
		Env:              getEnv("APP_ENV", "dev"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		FeedURL:          os.Getenv("FEED_URL"),
		FeedPath:         getEnv("FEED_PATH", "data/availability.json"),
		KafkaTopicPrefix: getEnv("KAFKA_TOPIC_PREFIX", ""),
	}
	brokers := getEnv("KAFKA_BROKERS", "")
	if brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	timeout, err := parseDurationEnv("FEED_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.FeedTimeout = timeout

	syncOnStart, err := parseBoolEnv("SYNC_ON_START", true)
	if err != nil {
		return Config{}, err
	}
	cfg.SyncOnStart = syncOnStart

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: invalid duration in %s: %w", key, err)
	}
	return d, nil
}

func parseBoolEnv(key string, fallback bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("config: invalid bool in %s: %w", key, err)
	}
	return b, nil
}
