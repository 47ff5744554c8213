// Package googlebooks wraps the Google Books volumes API. It is the
// external search capability behind the catalog store: rate-limited,
// retried on transient failures, and strict about normalizing raw
// volume records into entity.Book.
package googlebooks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bookfinder/internal/entity"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/time/rate"
)

var (
	// ErrNotFound is returned for single-volume lookups of unknown ids.
	ErrNotFound = errors.New("book not found")
	// ErrTimeout means the catalog did not answer within the request deadline.
	ErrTimeout = errors.New("catalog request timed out")
	// ErrUnreachable means no response was received at all.
	ErrUnreachable = errors.New("catalog unreachable")
)

// StatusError is an HTTP-level failure from the catalog (rate limiting,
// server errors, rejected requests).
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog returned status %d", e.Code)
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	maxRetries int
	sanitizer  *bluemonday.Policy
}

func NewClient(baseURL, apiKey string, rps int, maxRetries int, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "https://www.googleapis.com/books/v1"
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
		maxRetries: maxRetries,
		sanitizer:  bluemonday.StrictPolicy(),
	}
}

// volumeList matches GET /volumes responses.
type volumeList struct {
	Kind       string   `json:"kind"`
	TotalItems int      `json:"totalItems"`
	Items      []volume `json:"items"`
}

type volume struct {
	ID         string `json:"id"`
	VolumeInfo struct {
		Title         string   `json:"title"`
		Authors       []string `json:"authors"`
		Categories    []string `json:"categories"`
		AverageRating float64  `json:"averageRating"`
		RatingsCount  int      `json:"ratingsCount"`
		Description   string   `json:"description"`
		ImageLinks    *struct {
			Thumbnail      string `json:"thumbnail"`
			SmallThumbnail string `json:"smallThumbnail"`
		} `json:"imageLinks"`
		PublishedDate string `json:"publishedDate"`
		Publisher     string `json:"publisher"`
		PageCount     int    `json:"pageCount"`
		Language      string `json:"language"`
	} `json:"volumeInfo"`
}

// Search queries the volumes index. Records without an id or title are
// rejected during normalization; at most maxResults books are returned.
func (c *Client) Search(ctx context.Context, query string, startIndex, maxResults int) (entity.SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("startIndex", strconv.Itoa(startIndex))
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("printType", "books")
	params.Set("projection", "full")
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	var list volumeList
	if err := c.get(ctx, c.baseURL+"/volumes?"+params.Encode(), &list); err != nil {
		return entity.SearchResult{}, err
	}

	books := make([]entity.Book, 0, len(list.Items))
	for _, item := range list.Items {
		book, ok := c.normalize(item)
		if !ok {
			continue
		}
		books = append(books, book)
		if len(books) == maxResults {
			break
		}
	}

	return entity.SearchResult{
		Books:      books,
		TotalItems: list.TotalItems,
		Query:      query,
		StartIndex: startIndex,
	}, nil
}

// GetByID fetches a single volume.
func (c *Client) GetByID(ctx context.Context, id string) (entity.Book, error) {
	params := url.Values{}
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}
	u := c.baseURL + "/volumes/" + url.PathEscape(id)
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var item volume
	if err := c.get(ctx, u, &item); err != nil {
		return entity.Book{}, err
	}

	book, ok := c.normalize(item)
	if !ok {
		return entity.Book{}, fmt.Errorf("malformed volume record for id %q", id)
	}
	return book, nil
}

// normalize converts a raw volume into an entity.Book, applying the
// defaulting rules for optional fields. Records missing the external id
// or a title are rejected.
func (c *Client) normalize(item volume) (entity.Book, bool) {
	info := item.VolumeInfo
	if item.ID == "" || strings.TrimSpace(info.Title) == "" {
		return entity.Book{}, false
	}

	authors := info.Authors
	if len(authors) == 0 {
		authors = []string{"Unknown Author"}
	}
	categories := info.Categories
	if len(categories) == 0 {
		categories = []string{"Uncategorized"}
	}
	language := info.Language
	if language == "" {
		language = "en"
	}

	book := entity.Book{
		ID:              item.ID,
		Title:           info.Title,
		Authors:         authors,
		AuthorsText:     strings.Join(authors, ", "),
		Categories:      categories,
		PrimaryCategory: categories[0],
		AverageRating:   info.AverageRating,
		RatingsCount:    info.RatingsCount,
		Description:     strings.TrimSpace(c.sanitizer.Sanitize(info.Description)),
		PublishedDate:   info.PublishedDate,
		Publisher:       info.Publisher,
		PageCount:       info.PageCount,
		Language:        language,
	}
	if info.ImageLinks != nil {
		book.ImageLinks = &entity.ImageLinks{
			Thumbnail:      info.ImageLinks.Thumbnail,
			SmallThumbnail: info.ImageLinks.SmallThumbnail,
		}
	}
	return book, true
}

func (c *Client) get(ctx context.Context, url string, target interface{}) error {
	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			// Backoff: 1s, 2s, 4s...
			backoff := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
		if err != nil {
			return err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = classifyTransportError(err)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			if resp.StatusCode == http.StatusNotFound {
				return ErrNotFound
			}
			statusErr := &StatusError{Code: resp.StatusCode}
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				lastErr = statusErr
				continue
			}
			return statusErr
		}

		err = json.NewDecoder(resp.Body).Decode(target)
		resp.Body.Close()
		return err
	}
	return lastErr
}

func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrUnreachable, err)
}
