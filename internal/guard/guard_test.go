package guard

import (
	"context"
	"testing"

	"budget/internal/api"
	"budget/internal/localstore"
	"budget/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct{}

func (fakeAuth) Login(_ context.Context, _ api.Credentials) (*api.AuthResponse, error) {
	return &api.AuthResponse{Token: "tok", ID: 1, Username: "a@b.com", Currency: "USD"}, nil
}

type recordingNav struct {
	routes   []string
	replaces []bool
}

func (n *recordingNav) Navigate(route string, replace bool) {
	n.routes = append(n.routes, route)
	n.replaces = append(n.replaces, replace)
}

func TestMount_PendingInitializationShowsLoading(t *testing.T) {
	sess := session.NewStore(localstore.NewMemoryStore(), fakeAuth{}, "USD", nil)
	nav := &recordingNav{}
	g := New(sess, nav, "/login", nil)

	state := g.Mount()

	assert.Equal(t, StateLoading, state)
	assert.Empty(t, nav.routes, "loading must not redirect")
}

func TestMount_UnauthenticatedRedirectsWithReplace(t *testing.T) {
	sess := session.NewStore(localstore.NewMemoryStore(), fakeAuth{}, "USD", nil)
	sess.Initialize()
	nav := &recordingNav{}
	g := New(sess, nav, "/login", nil)

	state := g.Mount()

	assert.Equal(t, StateUnauthenticated, state)
	require.Len(t, nav.routes, 1)
	assert.Equal(t, "/login", nav.routes[0])
	assert.True(t, nav.replaces[0], "redirect must replace history")
}

func TestMount_AuthenticatedRendersContent(t *testing.T) {
	sess := session.NewStore(localstore.NewMemoryStore(), fakeAuth{}, "USD", nil)
	sess.Initialize()
	require.NoError(t, sess.Login(context.Background(), api.Credentials{Email: "a@b.com"}))

	nav := &recordingNav{}
	g := New(sess, nav, "/login", nil)

	assert.Equal(t, StateAuthenticated, g.Mount())
	assert.Empty(t, nav.routes)
}

func TestLogoutWhileMountedRedirects(t *testing.T) {
	sess := session.NewStore(localstore.NewMemoryStore(), fakeAuth{}, "USD", nil)
	sess.Initialize()
	require.NoError(t, sess.Login(context.Background(), api.Credentials{Email: "a@b.com"}))

	nav := &recordingNav{}
	g := New(sess, nav, "/login", nil)
	require.Equal(t, StateAuthenticated, g.Mount())

	sess.Logout()

	assert.Equal(t, StateUnauthenticated, g.State())
	require.Len(t, nav.routes, 1)
	assert.Equal(t, "/login", nav.routes[0])
	assert.True(t, nav.replaces[0])
}

func TestUnmount_DetachesFromSession(t *testing.T) {
	sess := session.NewStore(localstore.NewMemoryStore(), fakeAuth{}, "USD", nil)
	sess.Initialize()
	require.NoError(t, sess.Login(context.Background(), api.Credentials{Email: "a@b.com"}))

	nav := &recordingNav{}
	g := New(sess, nav, "/login", nil)
	g.Mount()
	g.Unmount()

	sess.Logout()

	assert.Empty(t, nav.routes, "unmounted guard must not react")
}

func TestRedirectFiresOncePerTransition(t *testing.T) {
	sess := session.NewStore(localstore.NewMemoryStore(), fakeAuth{}, "USD", nil)
	sess.Initialize()

	nav := &recordingNav{}
	g := New(sess, nav, "/login", nil)
	g.Mount()

	// Additional session notifications with no state change must not
	// re-issue the redirect.
	sess.Logout()
	sess.Logout()

	assert.Len(t, nav.routes, 1)
}
