// Package session owns the authenticated identity for the running client:
// who is logged in, their bearer token, and the durable copy of both in the
// local state store. It is the single writer of the token and user records.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"budget/internal/api"
	"budget/internal/core"
	"budget/internal/localstore"
)

// State is the store's initialization lifecycle.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
)

// AuthAPI is the slice of the auth service the store depends on.
type AuthAPI interface {
	Login(ctx context.Context, creds api.Credentials) (*api.AuthResponse, error)
}

// ErrNoActiveSession is returned by UpdateUser when no session is active.
// Callers must guard; hitting this is a programming error, not a user flow.
var ErrNoActiveSession = &api.PreconditionError{Reason: "no active session"}

// UserPatch carries the fields of a partial user update. Nil fields are left
// untouched by the merge.
type UserPatch struct {
	Email     *string
	FirstName *string
	LastName  *string
	Currency  *string
}

// Store is the session state container. All mutations are synchronous;
// subscribers are notified after each one.
type Store struct {
	mu      sync.Mutex
	state   State
	user    *core.User
	token   string
	subs    map[int]func()
	nextSub int

	storage         localstore.Store
	auth            AuthAPI
	defaultCurrency string
	logger          *slog.Logger
}

func NewStore(storage localstore.Store, auth AuthAPI, defaultCurrency string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		state:           StateUninitialized,
		subs:            make(map[int]func()),
		storage:         storage,
		auth:            auth,
		defaultCurrency: defaultCurrency,
		logger:          logger,
	}
}

// Initialize rehydrates the session from the state store. Corrupt or partial
// persisted state is a recovered condition: storage is cleared and the client
// starts unauthenticated. Nothing propagates to the caller.
func (s *Store) Initialize() {
	s.mu.Lock()
	s.state = StateLoading
	s.mu.Unlock()

	user, token, ok := s.rehydrate()

	s.mu.Lock()
	s.state = StateReady
	if ok {
		s.user = user
		s.token = token
	}
	s.mu.Unlock()
	s.notify()
}

func (s *Store) rehydrate() (*core.User, string, bool) {
	token, hasToken, err := s.storage.Get(localstore.KeyToken)
	if err != nil {
		s.logger.Warn("Failed to read stored token, starting unauthenticated", "error", err)
		s.clearStorage()
		return nil, "", false
	}
	if !hasToken {
		return nil, "", false
	}

	raw, hasUser, err := s.storage.Get(localstore.KeyUser)
	if err != nil || !hasUser {
		// Token without a user record is partial state; treat as corrupt
		s.logger.Warn("Stored session is incomplete, clearing", "error", err)
		s.clearStorage()
		return nil, "", false
	}

	var user core.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.logger.Warn("Stored user record is corrupt, clearing", "error", err)
		s.clearStorage()
		return nil, "", false
	}

	s.logger.Info("Session rehydrated", "user_id", user.ID, "username", user.Username)
	return &user, token, true
}

// Login authenticates against the backend and, on success, persists the token
// and the normalized user record. Auth failures propagate untouched so views
// can map the backend's message.
func (s *Store) Login(ctx context.Context, creds api.Credentials) error {
	resp, err := s.auth.Login(ctx, creds)
	if err != nil {
		return err
	}

	user := s.normalizeUser(resp)

	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.storage.Set(localstore.KeyToken, resp.Token); err != nil {
		return err
	}
	if err := s.storage.Set(localstore.KeyUser, string(raw)); err != nil {
		// Never leave a token without its user record behind
		s.clearStorage()
		return err
	}

	s.mu.Lock()
	s.user = user
	s.token = resp.Token
	s.state = StateReady
	s.mu.Unlock()

	s.logger.Info("Session established", "user_id", user.ID, "username", user.Username)
	s.notify()
	return nil
}

func (s *Store) normalizeUser(resp *api.AuthResponse) *core.User {
	user := &core.User{
		ID:        resp.ID,
		Username:  resp.Username,
		Email:     resp.Email,
		FirstName: resp.FirstName,
		LastName:  resp.LastName,
		Roles:     resp.Roles,
		Currency:  resp.Currency,
	}
	if user.Roles == nil {
		user.Roles = []string{}
	}
	if user.Currency == "" {
		user.Currency = s.defaultCurrency
	}
	return user
}

// UpdateUser shallow-merges patch into the current user and re-persists the
// record. The token is not touched. Returns ErrNoActiveSession when called
// without a session.
func (s *Store) UpdateUser(patch UserPatch) error {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return ErrNoActiveSession
	}

	updated := *s.user
	if patch.Email != nil {
		updated.Email = *patch.Email
	}
	if patch.FirstName != nil {
		updated.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		updated.LastName = *patch.LastName
	}
	if patch.Currency != nil {
		updated.Currency = *patch.Currency
	}

	raw, err := json.Marshal(&updated)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if err := s.storage.Set(localstore.KeyUser, string(raw)); err != nil {
		s.mu.Unlock()
		return err
	}

	s.user = &updated
	s.mu.Unlock()
	s.notify()
	return nil
}

// Logout clears the session from memory and storage. Idempotent.
func (s *Store) Logout() {
	s.clearStorage()

	s.mu.Lock()
	hadSession := s.user != nil
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	if hadSession {
		s.logger.Info("Session cleared")
	}
	s.notify()
}

func (s *Store) clearStorage() {
	if err := s.storage.Delete(localstore.KeyToken); err != nil {
		s.logger.Warn("Failed to clear stored token", "error", err)
	}
	if err := s.storage.Delete(localstore.KeyUser); err != nil {
		s.logger.Warn("Failed to clear stored user", "error", err)
	}
}

// State returns the initialization lifecycle state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsAuthenticated reports whether a user is present.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// User returns a copy of the current user, or nil.
func (s *Store) User() *core.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token returns the in-memory bearer token, or empty.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Subscribe registers fn to run after every mutation. The returned function
// removes the subscription.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
