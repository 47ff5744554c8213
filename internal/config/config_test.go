package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GOOGLE_BOOKS_API_KEY", "")
	t.Setenv("BOOKS_API_URL", "")
	t.Setenv("PAGE_SIZE", "")
	t.Setenv("SEARCH_RPS", "")

	cfg := Load()
	assert.Equal(t, "https://www.googleapis.com/books/v1", cfg.APIBaseURL)
	assert.Equal(t, 20, cfg.PageSize)
	assert.Equal(t, 5, cfg.SearchRPS)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.NotEmpty(t, cfg.DataDir)
	assert.NotEmpty(t, cfg.SessionSecret)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GOOGLE_BOOKS_API_KEY", "key-123")
	t.Setenv("BOOKS_API_URL", "http://localhost:9999/books")
	t.Setenv("PAGE_SIZE", "10")
	t.Setenv("BOOKFINDER_DATA_DIR", "/tmp/bookfinder-test")

	cfg := Load()
	assert.Equal(t, "key-123", cfg.APIKey)
	assert.Equal(t, "http://localhost:9999/books", cfg.APIBaseURL)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, "/tmp/bookfinder-test", cfg.DataDir)
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	t.Setenv("PAGE_SIZE", "not-a-number")
	t.Setenv("SEARCH_RPS", "-3")

	cfg := Load()
	assert.Equal(t, 20, cfg.PageSize)
	assert.Equal(t, 5, cfg.SearchRPS)
}
