package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken       string
	WebAppURL      string
	DBPath         string
	ListenAddr     string
	StaticDir      string
	AdsgramBlockID string
	LogLevel       string
	Environment    string
}

func LoadConfig() (*Config, error) {
	// a missing .env is fine in deployed environments
	_ = godotenv.Load()

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("no BOT_TOKEN in environment")
	}

	webappURL := os.Getenv("WEBAPP_URL")
	if webappURL == "" {
		return nil, fmt.Errorf("no WEBAPP_URL in environment")
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		return nil, fmt.Errorf("no DB_PATH in environment")
	}

	return &Config{
		BotToken:       token,
		WebAppURL:      webappURL,
		DBPath:         dbPath,
		ListenAddr:     loadString("LISTEN_ADDR", ":8080"),
		StaticDir:      loadString("STATIC_DIR", "static"),
		AdsgramBlockID: os.Getenv("ADSGRAM_BLOCK_ID"),
		LogLevel:       loadString("LOG_LEVEL", "info"),
		Environment:    loadString("ENVIRONMENT", "development"),
	}, nil
}

func loadString(key, defValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defValue
}
