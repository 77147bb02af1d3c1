package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	QuestionsPath string
	StatsBackend  string // memory, file, sqlite or redis
	StatsPath     string
	RedisURL      string
	Environment   string
	Events        EventConfig
}

func LoadConfig() (*Config, error) {
	// A .env file is optional for a local install; environment variables
	// always win.
	_ = godotenv.Load()

	return &Config{
		QuestionsPath: getEnv("QUESTIONS_PATH", "questions.json"),
		StatsBackend:  getEnv("STATS_BACKEND", "file"),
		StatsPath:     getEnv("STATS_PATH", defaultStatsPath()),
		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		Events: EventConfig{
			Publisher:    getEnv("EVENTS_PUBLISHER", "channel"),
			KafkaBrokers: getEnv("KAFKA_BROKERS", "localhost:9092"),
			Topic:        getEnv("EVENTS_TOPIC", "cdl_prep_events"),
		},
	}, nil
}

func defaultStatsPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home + "/.cdl-prep/stats.json"
	}
	return "stats.json"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
