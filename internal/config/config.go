package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is everything the application reads from the environment.
type Config struct {
	APIKey         string
	APIBaseURL     string
	DataDir        string
	SessionSecret  string
	PageSize       int
	SearchRPS      int
	SearchRetries  int
	RequestTimeout time.Duration
}

// Load reads configuration from the environment, with .env.local as an
// optional overlay for development.
func Load() Config {
	_ = godotenv.Load(".env.local")

	return Config{
		APIKey:         os.Getenv("GOOGLE_BOOKS_API_KEY"),
		APIBaseURL:     getEnv("BOOKS_API_URL", "https://www.googleapis.com/books/v1"),
		DataDir:        getEnv("BOOKFINDER_DATA_DIR", defaultDataDir()),
		SessionSecret:  getEnv("SESSION_SECRET", "bookfinder-local-dev"),
		PageSize:       getEnvInt("PAGE_SIZE", 20),
		SearchRPS:      getEnvInt("SEARCH_RPS", 5),
		SearchRetries:  getEnvInt("SEARCH_MAX_RETRIES", 2),
		RequestTimeout: 10 * time.Second,
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bookfinder"
	}
	return filepath.Join(home, ".bookfinder")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
