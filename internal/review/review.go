// Package review holds user-authored ratings keyed by catalog item id.
// CRUD is synchronous; the slice is persisted to the durable key-value
// store so reviews survive restarts.
package review

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"bookfinder/internal/entity"
	"bookfinder/internal/platform/localstore"
	"bookfinder/internal/validate"

	"github.com/google/uuid"
)

const storageKey = "reviews"

var (
	// ErrNotFound is returned by Update for unknown review ids.
	ErrNotFound = errors.New("review not found")
	// ErrDuplicate rejects a second review for the same book by the
	// same user; edit the existing one instead.
	ErrDuplicate = errors.New("book already reviewed by this user")
)

type addInput struct {
	BookID   string `validate:"required"`
	Rating   int    `validate:"gte=1,lte=5"`
	Text     string `validate:"required"`
	Username string `validate:"required"`
}

type updateInput struct {
	Rating int    `validate:"gte=1,lte=5"`
	Text   string `validate:"required"`
}

type Store struct {
	mu      sync.Mutex
	reviews []entity.Review
	storage localstore.KV
	notify  func()
}

// NewStore builds a review store backed by storage. A persisted slice
// is loaded eagerly; a corrupt payload is cleared and the store starts
// empty.
func NewStore(storage localstore.KV) *Store {
	s := &Store{storage: storage}
	s.load()
	return s
}

// SetNotify registers a callback invoked after every mutation.
func (s *Store) SetNotify(fn func()) {
	s.mu.Lock()
	s.notify = fn
	s.mu.Unlock()
}

// Add validates and appends a new review. At most one review per
// (bookID, username) is allowed.
func (s *Store) Add(bookID string, rating int, text, username string) (entity.Review, error) {
	text = strings.TrimSpace(text)
	in := addInput{BookID: bookID, Rating: rating, Text: text, Username: username}
	if errs := validate.Struct(in); errs != nil {
		return entity.Review{}, errs[0]
	}

	s.mu.Lock()
	for _, r := range s.reviews {
		if r.BookID == bookID && r.Username == username {
			s.mu.Unlock()
			return entity.Review{}, ErrDuplicate
		}
	}

	r := entity.Review{
		ID:        uuid.NewString(),
		BookID:    bookID,
		Rating:    rating,
		Text:      text,
		Username:  username,
		Timestamp: time.Now().UnixMilli(),
	}
	s.reviews = append(s.reviews, r)
	s.persistLocked()
	notify := s.notify
	s.mu.Unlock()

	if notify != nil {
		notify()
	}
	return r, nil
}

// Update edits rating and text of an existing review in place,
// refreshing its timestamp. ID, book and author never change.
func (s *Store) Update(id string, rating int, text string) (entity.Review, error) {
	text = strings.TrimSpace(text)
	if errs := validate.Struct(updateInput{Rating: rating, Text: text}); errs != nil {
		return entity.Review{}, errs[0]
	}

	s.mu.Lock()
	for i := range s.reviews {
		if s.reviews[i].ID != id {
			continue
		}
		s.reviews[i].Rating = rating
		s.reviews[i].Text = text
		s.reviews[i].Timestamp = time.Now().UnixMilli()
		updated := s.reviews[i]
		s.persistLocked()
		notify := s.notify
		s.mu.Unlock()

		if notify != nil {
			notify()
		}
		return updated, nil
	}
	s.mu.Unlock()
	return entity.Review{}, ErrNotFound
}

// Remove deletes a review by id; removing an absent id is a no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	kept := s.reviews[:0]
	removed := false
	for _, r := range s.reviews {
		if r.ID == id {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	s.reviews = kept
	if removed {
		s.persistLocked()
	}
	notify := s.notify
	s.mu.Unlock()

	if removed && notify != nil {
		notify()
	}
}

// FindByBook returns the first review for bookID in insertion order.
func (s *Store) FindByBook(bookID string) (entity.Review, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.reviews {
		if r.BookID == bookID {
			return r, true
		}
	}
	return entity.Review{}, false
}

// All returns a copy of every review in insertion order.
func (s *Store) All() []entity.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Review(nil), s.reviews...)
}

func (s *Store) load() {
	raw, ok, err := s.storage.Get(storageKey)
	if err != nil || !ok {
		return
	}
	var reviews []entity.Review
	if err := json.Unmarshal([]byte(raw), &reviews); err != nil {
		// Local recovery: drop the corrupt payload, start empty.
		_ = s.storage.Delete(storageKey)
		return
	}
	s.reviews = reviews
}

// persistLocked writes the slice back to storage, fire-and-forget.
func (s *Store) persistLocked() {
	raw, err := json.Marshal(s.reviews)
	if err != nil {
		return
	}
	_ = s.storage.Set(storageKey, string(raw))
}
