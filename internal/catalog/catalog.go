// Package catalog is the search slice: last query, current result
// page, and the loading/error status of the in-flight request.
// Concurrent searches are serialized by sequence gating: every dispatch
// takes a monotonically increasing number and a resolution is applied
// only if its number is still the latest dispatched, so a slow earlier
// request can never overwrite a later one.
package catalog

import (
	"context"
	"errors"
	"strings"
	"sync"

	"bookfinder/internal/entity"
)

var (
	// ErrEmptyQuery rejects blank searches locally; they are never
	// dispatched to the search capability.
	ErrEmptyQuery = errors.New("search query is empty")
	// ErrInvalidPage rejects page numbers below 1.
	ErrInvalidPage = errors.New("page must be >= 1")
	// ErrSuperseded means a newer search was dispatched while this one
	// was in flight; its result was discarded and state is untouched.
	ErrSuperseded = errors.New("search superseded by a newer request")
)

// DefaultPageSize matches the result grid of the original UI.
const DefaultPageSize = 20

// Searcher is the external search capability.
type Searcher interface {
	Search(ctx context.Context, query string, startIndex, maxResults int) (entity.SearchResult, error)
	GetByID(ctx context.Context, id string) (entity.Book, error)
}

// State is a point-in-time copy of the search slice.
type State struct {
	Books       []entity.Book
	Loading     bool
	Error       string
	SearchQuery string
	CurrentPage int
	TotalItems  int
	PageSize    int
	HasSearched bool
}

type Store struct {
	mu       sync.Mutex
	state    State
	searcher Searcher
	pageSize int
	seq      uint64 // latest dispatched request
	notify   func()
}

func NewStore(searcher Searcher, pageSize int) *Store {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Store{
		searcher: searcher,
		pageSize: pageSize,
		state:    initialState(pageSize),
	}
}

func initialState(pageSize int) State {
	return State{CurrentPage: 1, PageSize: pageSize}
}

// SetNotify registers a callback invoked after every state transition,
// including the loading edge of an async search.
func (s *Store) SetNotify(fn func()) {
	s.mu.Lock()
	s.notify = fn
	s.mu.Unlock()
}

// Search runs a fresh query from page 1. On failure the result set is
// cleared and Error carries a human-readable message.
func (s *Store) Search(ctx context.Context, query string) (entity.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return entity.SearchResult{}, ErrEmptyQuery
	}

	seq := s.begin(query)
	res, err := s.searcher.Search(ctx, query, 0, s.pageSize)

	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		return entity.SearchResult{}, ErrSuperseded
	}
	s.state.Loading = false
	s.state.HasSearched = true
	if err != nil {
		s.state.Books = nil
		s.state.TotalItems = 0
		s.state.Error = errorMessage(err)
	} else {
		s.state.Books = res.Books
		s.state.TotalItems = res.TotalItems
		s.state.CurrentPage = 1
		s.state.Error = ""
	}
	notify := s.notify
	s.mu.Unlock()

	if notify != nil {
		notify()
	}
	return res, err
}

// LoadPage fetches another page of the current query. On failure the
// last good results are preserved and only Error is set.
func (s *Store) LoadPage(ctx context.Context, query string, page int) (entity.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return entity.SearchResult{}, ErrEmptyQuery
	}
	if page < 1 {
		return entity.SearchResult{}, ErrInvalidPage
	}

	seq := s.begin(query)
	res, err := s.searcher.Search(ctx, query, (page-1)*s.pageSize, s.pageSize)

	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		return entity.SearchResult{}, ErrSuperseded
	}
	s.state.Loading = false
	if err != nil {
		s.state.Error = errorMessage(err)
	} else {
		s.state.Books = res.Books
		s.state.TotalItems = res.TotalItems
		s.state.CurrentPage = page
		s.state.Error = ""
	}
	notify := s.notify
	s.mu.Unlock()

	if notify != nil {
		notify()
	}
	return res, err
}

// Reset returns the slice to its initial state and invalidates any
// in-flight request.
func (s *Store) Reset() {
	s.mu.Lock()
	s.seq++
	s.state = initialState(s.pageSize)
	notify := s.notify
	s.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// State returns a copy of the current search state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	st.Books = append([]entity.Book(nil), s.state.Books...)
	return st
}

// begin records the pending edge of a dispatch and returns its
// sequence number.
func (s *Store) begin(query string) uint64 {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.state.Loading = true
	s.state.Error = ""
	s.state.SearchQuery = query
	notify := s.notify
	s.mu.Unlock()

	if notify != nil {
		notify()
	}
	return seq
}
