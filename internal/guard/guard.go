// Package guard gates protected views on session state. A mounted guard is
// in one of three states: loading while session initialization is pending,
// authenticated when a session is active, and unauthenticated otherwise, in
// which case it redirects to the login route replacing history.
package guard

import (
	"log/slog"
	"sync"

	"budget/internal/session"
)

// State is the guard's resolution for the mounted view.
type State int

const (
	StateLoading State = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	}
	return "unknown"
}

// Navigator performs a route change. replace means the current history entry
// is replaced so the guarded route cannot be reached with back-navigation.
type Navigator interface {
	Navigate(route string, replace bool)
}

// Guard evaluates session state for one protected view.
type Guard struct {
	mu          sync.Mutex
	state       State
	unsubscribe func()

	session    *session.Store
	nav        Navigator
	loginRoute string
	logger     *slog.Logger
}

func New(sessionStore *session.Store, nav Navigator, loginRoute string, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Guard{
		state:      StateLoading,
		session:    sessionStore,
		nav:        nav,
		loginRoute: loginRoute,
		logger:     logger,
	}
}

// Mount resolves the guard against the current session state and subscribes
// to session changes so a logout while mounted redirects immediately. Returns
// the resolved state.
func (g *Guard) Mount() State {
	g.mu.Lock()
	if g.unsubscribe == nil {
		g.unsubscribe = g.session.Subscribe(g.reevaluate)
	}
	g.mu.Unlock()

	g.reevaluate()
	return g.State()
}

// Unmount detaches the guard from the session store.
func (g *Guard) Unmount() {
	g.mu.Lock()
	unsubscribe := g.unsubscribe
	g.unsubscribe = nil
	g.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// State returns the guard's current resolution.
func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Guard) reevaluate() {
	var next State
	switch {
	case g.session.State() != session.StateReady:
		// Initialization pending: render the placeholder, no redirect
		next = StateLoading
	case g.session.IsAuthenticated():
		next = StateAuthenticated
	default:
		next = StateUnauthenticated
	}

	g.mu.Lock()
	prev := g.state
	g.state = next
	g.mu.Unlock()

	if next == StateUnauthenticated && prev != StateUnauthenticated {
		g.logger.Debug("Redirecting unauthenticated navigation", "route", g.loginRoute)
		g.nav.Navigate(g.loginRoute, true)
	}
}
