// Package state composes the session, catalog and review slices into
// one addressable state tree. The store is built explicitly via New and
// injected wherever it is needed; there is no package-level instance.
package state

import (
	"context"
	"sync"

	"bookfinder/internal/catalog"
	"bookfinder/internal/entity"
	"bookfinder/internal/review"
	"bookfinder/internal/session"
)

// Snapshot is a point-in-time copy of the whole state tree.
type Snapshot struct {
	Session session.State
	Catalog catalog.State
	Reviews []entity.Review
}

// Deps are the sub-stores composed by the root store. The slices stay
// independent; nothing here crosses between them.
type Deps struct {
	Session *session.Store
	Catalog *catalog.Store
	Reviews *review.Store
}

type Store struct {
	session *session.Store
	catalog *catalog.Store
	reviews *review.Store

	mu     sync.Mutex
	nextID int
	subs   map[int]func(Snapshot)
}

// New wires the sub-stores together and registers itself as their
// transition listener so subscribers see every state change, including
// the loading edge of async searches.
func New(deps Deps) *Store {
	s := &Store{
		session: deps.Session,
		catalog: deps.Catalog,
		reviews: deps.Reviews,
		subs:    make(map[int]func(Snapshot)),
	}
	s.session.SetNotify(s.publish)
	s.catalog.SetNotify(s.publish)
	s.reviews.SetNotify(s.publish)
	return s
}

// Subscribe registers fn to run after every state transition. The
// returned function removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Snapshot reads the combined state.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Session: s.session.State(),
		Catalog: s.catalog.State(),
		Reviews: s.reviews.All(),
	}
}

func (s *Store) publish() {
	snap := s.Snapshot()
	s.mu.Lock()
	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// Intent surface. Each call routes to the owning slice; results are
// also observable through the next Snapshot.

func (s *Store) Login(ctx context.Context, username, password string, rememberMe bool) (entity.User, error) {
	return s.session.Login(ctx, username, password, rememberMe)
}

func (s *Store) Logout() {
	s.session.Logout()
}

func (s *Store) RestoreSession() {
	s.session.Restore()
}

func (s *Store) Search(ctx context.Context, query string) (entity.SearchResult, error) {
	return s.catalog.Search(ctx, query)
}

func (s *Store) LoadPage(ctx context.Context, query string, page int) (entity.SearchResult, error) {
	return s.catalog.LoadPage(ctx, query, page)
}

func (s *Store) ResetSearch() {
	s.catalog.Reset()
}

// AddReview takes the username from the caller; the review slice has no
// dependency on the session slice.
func (s *Store) AddReview(bookID string, rating int, text, username string) (entity.Review, error) {
	return s.reviews.Add(bookID, rating, text, username)
}

func (s *Store) UpdateReview(id string, rating int, text string) (entity.Review, error) {
	return s.reviews.Update(id, rating, text)
}

func (s *Store) RemoveReview(id string) {
	s.reviews.Remove(id)
}

func (s *Store) FindReviewByBook(bookID string) (entity.Review, bool) {
	return s.reviews.FindByBook(bookID)
}
