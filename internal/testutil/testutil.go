package testutil

import (
	"time"

	"bookfinder/internal/entity"
)

// TestUser is an authenticated user for testing
var TestUser = entity.User{
	Username:        "testuser",
	IsAuthenticated: true,
}

// TestBook is a normalized catalog item for testing
var TestBook = entity.Book{
	ID:              "zyTCAlFPjgYC",
	Title:           "The Google Story",
	Authors:         []string{"David A. Vise", "Mark Malseed"},
	AuthorsText:     "David A. Vise, Mark Malseed",
	Categories:      []string{"Business & Economics"},
	PrimaryCategory: "Business & Economics",
	AverageRating:   3.5,
	RatingsCount:    136,
	Language:        "en",
}

// TestReview is a stored review for TestBook
var TestReview = entity.Review{
	ID:        "test-review-id-123",
	BookID:    TestBook.ID,
	Rating:    4,
	Text:      "Worth reading",
	Username:  TestUser.Username,
	Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).UnixMilli(),
}

// SearchResultOf wraps books in a single-page result for query.
func SearchResultOf(query string, total int, books ...entity.Book) entity.SearchResult {
	return entity.SearchResult{
		Books:      books,
		TotalItems: total,
		Query:      query,
	}
}
