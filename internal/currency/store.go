// Package currency tracks the active display currency. The value follows the
// session user's currency one way (session change -> currency store) and can
// be set locally, in which case the change is written through to the
// persisted user record without touching the token.
package currency

import (
	"log/slog"
	"sync"

	"budget/internal/session"
)

// Store is the currency preference state container.
type Store struct {
	mu      sync.Mutex
	code    string
	subs    map[int]func()
	nextSub int

	session *session.Store
	logger  *slog.Logger
}

// NewStore creates the preference store initialized to defaultCode and wired
// to re-derive from the session store on every session change.
func NewStore(sessionStore *session.Store, defaultCode string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		code:    defaultCode,
		subs:    make(map[int]func()),
		session: sessionStore,
		logger:  logger,
	}
	sessionStore.Subscribe(s.syncFromSession)
	return s
}

// syncFromSession pulls the session user's currency after a session mutation.
// A missing user (logged out) leaves the last value in place.
func (s *Store) syncFromSession() {
	user := s.session.User()
	if user == nil || user.Currency == "" {
		return
	}

	s.mu.Lock()
	changed := s.code != user.Currency
	s.code = user.Currency
	s.mu.Unlock()

	if changed {
		s.logger.Debug("Currency derived from session", "currency", user.Currency)
		s.notify()
	}
}

// Code returns the active currency code.
func (s *Store) Code() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.code
}

// Set updates the active currency and, when a session is active, merges the
// code into the persisted user record. Server-side persistence is the
// caller's responsibility; this is local state only.
func (s *Store) Set(code string) error {
	s.mu.Lock()
	s.code = code
	s.mu.Unlock()

	if s.session.IsAuthenticated() {
		if err := s.session.UpdateUser(session.UserPatch{Currency: &code}); err != nil {
			return err
		}
	}

	s.notify()
	return nil
}

// Subscribe registers fn to run after every currency change. The returned
// function removes the subscription.
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
