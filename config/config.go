package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// Config reads a variable from the environment, loading .env on first use.
func Config(key string) string {
	loadOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	})
	return os.Getenv(key)
}

// ConfigOr falls back to def when the variable is unset or empty.
func ConfigOr(key, def string) string {
	value := Config(key)
	if value == "" {
		return def
	}
	return value
}
