// Package config reads process configuration from the environment and
// opens the database.
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken    string
	WebAppURL   string
	WebAppAddr  string
	DBPath      string
	DatabaseURL string
	KafkaAddr   string
	Timezone    string
	LogLevel    string
}

// Load reads the configuration, consulting .env first. BOT_TOKEN and
// WEBAPP_URL are required; everything else has a default or is optional.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		WebAppURL:   os.Getenv("WEBAPP_URL"),
		WebAppAddr:  EnvDefault("WEBAPP_ADDR", ":8080"),
		DBPath:      EnvDefault("DB_PATH", "./data/choyxona.db"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		KafkaAddr:   os.Getenv("KAFKA_ADDRESS"),
		Timezone:    EnvDefault("TIMEZONE", "Asia/Tashkent"),
		LogLevel:    EnvDefault("LOG_LEVEL", "info"),
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("missing required env BOT_TOKEN")
	}
	if cfg.WebAppURL == "" {
		return nil, fmt.Errorf("missing required env WEBAPP_URL")
	}
	return cfg, nil
}

// Location resolves the timezone that bounds a reporting day.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
