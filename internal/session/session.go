// Package session holds the current user identity and persists it
// across runs. The store is a two-state machine (anonymous or
// authenticated); the invariant IsAuthenticated == (User != nil) holds
// at every observable point.
package session

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"bookfinder/internal/entity"
	"bookfinder/internal/platform/crypto"
	"bookfinder/internal/platform/localstore"
)

// Persisted snapshot keys.
const (
	keyUser          = "user"
	keyAuthenticated = "isAuthenticated"
	keyRememberMe    = "rememberMe"
	keySessionToken  = "sessionToken"
)

const tokenTTL = 30 * 24 * time.Hour

// Authenticator is the external credential-check capability.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (entity.User, error)
}

// State is a point-in-time copy of the session slice.
type State struct {
	User            *entity.User
	IsAuthenticated bool
	RememberMe      bool
}

type Store struct {
	mu        sync.Mutex
	state     State
	auth      Authenticator
	durable   localstore.KV
	ephemeral localstore.KV
	secret    string
	notify    func()
}

// NewStore builds an anonymous session store. The durable KV survives
// restarts and backs remember-me sessions; the ephemeral KV backs the
// rest. Call Restore to pick up a persisted session.
func NewStore(auth Authenticator, durable, ephemeral localstore.KV, secret string) *Store {
	return &Store{
		auth:      auth,
		durable:   durable,
		ephemeral: ephemeral,
		secret:    secret,
	}
}

// SetNotify registers a callback invoked after every state transition.
func (s *Store) SetNotify(fn func()) {
	s.mu.Lock()
	s.notify = fn
	s.mu.Unlock()
}

// Login checks credentials and, on success, transitions to
// authenticated and persists the snapshot. A failed login leaves the
// store anonymous and writes nothing.
func (s *Store) Login(ctx context.Context, username, password string, rememberMe bool) (entity.User, error) {
	user, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return entity.User{}, err
	}

	s.mu.Lock()
	s.state = State{
		User:            &user,
		IsAuthenticated: true,
		RememberMe:      rememberMe,
	}

	storage := s.ephemeral
	if rememberMe {
		storage = s.durable
	}
	// Persistence is fire-and-forget; storage failures do not affect
	// the in-memory session.
	if raw, err := json.Marshal(user); err == nil {
		_ = storage.Set(keyUser, string(raw))
	}
	_ = storage.Set(keyAuthenticated, "true")
	_ = storage.Set(keyRememberMe, strconv.FormatBool(rememberMe))
	if token, err := crypto.GenerateToken(s.secret, user.Username, tokenTTL); err == nil {
		_ = storage.Set(keySessionToken, token)
	}
	notify := s.notify
	s.mu.Unlock()

	if notify != nil {
		notify()
	}
	return user, nil
}

// Logout returns to anonymous and erases the durable snapshot
// unconditionally, even when the session was held in ephemeral storage.
func (s *Store) Logout() {
	s.mu.Lock()
	s.state = State{}
	s.clearDurableLocked()
	notify := s.notify
	s.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// Restore repopulates the session from the durable snapshot, if one
// exists. A corrupt or unverifiable snapshot is cleared and the store
// stays anonymous; corruption is never surfaced to the caller.
func (s *Store) Restore() {
	s.mu.Lock()

	rawUser, hasUser, _ := s.durable.Get(keyUser)
	rawAuth, _, _ := s.durable.Get(keyAuthenticated)
	if !hasUser || rawAuth != "true" {
		s.mu.Unlock()
		return
	}

	var user entity.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil || user.Username == "" {
		s.clearDurableLocked()
		s.mu.Unlock()
		return
	}

	token, hasToken, _ := s.durable.Get(keySessionToken)
	if !hasToken {
		s.clearDurableLocked()
		s.mu.Unlock()
		return
	}
	claims, err := crypto.ParseToken(s.secret, token)
	if err != nil || claims.Username != user.Username {
		s.clearDurableLocked()
		s.mu.Unlock()
		return
	}

	rememberMe := false
	if raw, ok, _ := s.durable.Get(keyRememberMe); ok {
		rememberMe, _ = strconv.ParseBool(raw)
	}

	user.IsAuthenticated = true
	s.state = State{
		User:            &user,
		IsAuthenticated: true,
		RememberMe:      rememberMe,
	}
	notify := s.notify
	s.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// State returns a copy of the current session state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	if st.User != nil {
		u := *st.User
		st.User = &u
	}
	return st
}

func (s *Store) clearDurableLocked() {
	for _, key := range []string{keyUser, keyAuthenticated, keyRememberMe, keySessionToken} {
		_ = s.durable.Delete(key)
	}
}
