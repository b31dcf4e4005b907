package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	LogLevel   string
	Seed       *int64
	Count      int
	MaxRetries int
	BatchSize  int
	Country    string
}

// Load reads MOCKDATA_* variables, after loading a .env file from the working
// directory if one exists. Variables already set in the environment win.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:   getEnv("MOCKDATA_LOG_LEVEL", "info"),
		Count:      getEnvInt("MOCKDATA_COUNT", 9),
		MaxRetries: getEnvInt("MOCKDATA_MAX_RETRIES", 10000),
		BatchSize:  getEnvInt("MOCKDATA_BATCH_SIZE", 1000),
		Country:    getEnv("MOCKDATA_COUNTRY", "us"),
	}
	if v, ok := os.LookupEnv("MOCKDATA_SEED"); ok && v != "" {
		if seed, err := cast.ToInt64E(v); err == nil {
			cfg.Seed = &seed
		}
	}
	return cfg
}

// Default is the configuration Load returns with an empty environment.
func Default() *Config {
	return &Config{
		LogLevel:   "info",
		Count:      9,
		MaxRetries: 10000,
		BatchSize:  1000,
		Country:    "us",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := cast.ToIntE(value)
	if err != nil || n < 0 {
		return defaultValue
	}
	return n
}
