package session

import (
	"context"
	"errors"
	"testing"

	"budget/internal/api"
	"budget/internal/core"
	"budget/internal/localstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	resp *api.AuthResponse
	err  error
}

func (f *fakeAuth) Login(_ context.Context, _ api.Credentials) (*api.AuthResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func authOK() *fakeAuth {
	return &fakeAuth{resp: &api.AuthResponse{
		Token:     "tok-1",
		ID:        42,
		Username:  "a@b.com",
		Email:     "a@b.com",
		FirstName: "Ada",
		LastName:  "B",
		Roles:     []string{"ROLE_USER"},
	}}
}

func TestLogin_RoundTripAndRehydration(t *testing.T) {
	storage := localstore.NewMemoryStore()
	store := NewStore(storage, authOK(), "USD", nil)
	store.Initialize()

	require.False(t, store.IsAuthenticated())
	require.NoError(t, store.Login(context.Background(), api.Credentials{Email: "a@b.com", Password: "x"}))

	assert.True(t, store.IsAuthenticated())
	user := store.User()
	require.NotNil(t, user)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "USD", user.Currency, "missing currency must default")

	token, ok, err := storage.Get(localstore.KeyToken)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "tok-1", token)

	_, ok, err = storage.Get(localstore.KeyUser)
	require.NoError(t, err)
	require.True(t, ok)

	// Simulated restart: a fresh store over the same storage
	reborn := NewStore(storage, authOK(), "USD", nil)
	reborn.Initialize()

	assert.Equal(t, StateReady, reborn.State())
	assert.True(t, reborn.IsAuthenticated())
	rebornUser := reborn.User()
	require.NotNil(t, rebornUser)
	assert.Equal(t, *user, *rebornUser)
	assert.Equal(t, "tok-1", reborn.Token())
}

func TestLogin_FailurePropagatesUntouched(t *testing.T) {
	storage := localstore.NewMemoryStore()
	backendErr := &api.TransportError{Status: 401, Body: []byte(`{"message":"bad password"}`)}
	store := NewStore(storage, &fakeAuth{err: backendErr}, "USD", nil)
	store.Initialize()

	err := store.Login(context.Background(), api.Credentials{Email: "a@b.com", Password: "bad"})
	var transport *api.TransportError
	require.ErrorAs(t, err, &transport)
	assert.Equal(t, backendErr, transport, "error must reach the caller unmodified")

	assert.False(t, store.IsAuthenticated())
	_, ok, _ := storage.Get(localstore.KeyToken)
	assert.False(t, ok, "failed login must not persist anything")
}

func TestInitialize_CorruptUserRecordClearsStorage(t *testing.T) {
	storage := localstore.NewMemoryStore()
	require.NoError(t, storage.Set(localstore.KeyToken, "tok-1"))
	require.NoError(t, storage.Set(localstore.KeyUser, `{not json`))

	store := NewStore(storage, authOK(), "USD", nil)
	store.Initialize() // must not panic or surface an error

	assert.Equal(t, StateReady, store.State())
	assert.False(t, store.IsAuthenticated())

	_, ok, _ := storage.Get(localstore.KeyToken)
	assert.False(t, ok, "token must be cleared")
	_, ok, _ = storage.Get(localstore.KeyUser)
	assert.False(t, ok, "user record must be cleared")
}

func TestInitialize_TokenWithoutUserIsPartialState(t *testing.T) {
	storage := localstore.NewMemoryStore()
	require.NoError(t, storage.Set(localstore.KeyToken, "tok-1"))

	store := NewStore(storage, authOK(), "USD", nil)
	store.Initialize()

	assert.False(t, store.IsAuthenticated())
	_, ok, _ := storage.Get(localstore.KeyToken)
	assert.False(t, ok)
}

func TestLogout_Idempotent(t *testing.T) {
	storage := localstore.NewMemoryStore()
	store := NewStore(storage, authOK(), "USD", nil)
	store.Initialize()
	require.NoError(t, store.Login(context.Background(), api.Credentials{Email: "a@b.com", Password: "x"}))

	store.Logout()
	store.Logout() // second call must not panic

	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())
	for _, key := range []string{localstore.KeyToken, localstore.KeyUser} {
		_, ok, err := storage.Get(key)
		require.NoError(t, err)
		assert.False(t, ok, "storage must be empty after logout")
	}
}

func TestUpdateUser_MergesAndPersists(t *testing.T) {
	storage := localstore.NewMemoryStore()
	store := NewStore(storage, authOK(), "USD", nil)
	store.Initialize()
	require.NoError(t, store.Login(context.Background(), api.Credentials{Email: "a@b.com", Password: "x"}))

	first := "Grace"
	cur := "EUR"
	require.NoError(t, store.UpdateUser(UserPatch{FirstName: &first, Currency: &cur}))

	user := store.User()
	assert.Equal(t, "Grace", user.FirstName)
	assert.Equal(t, "EUR", user.Currency)
	assert.Equal(t, "a@b.com", user.Email, "untouched fields survive the merge")

	// Token untouched
	token, ok, err := storage.Get(localstore.KeyToken)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "tok-1", token)

	// Fresh store sees the merged record
	reborn := NewStore(storage, authOK(), "USD", nil)
	reborn.Initialize()
	assert.Equal(t, "Grace", reborn.User().FirstName)
}

func TestUpdateUser_WithoutSessionIsAnError(t *testing.T) {
	store := NewStore(localstore.NewMemoryStore(), authOK(), "USD", nil)
	store.Initialize()

	name := "X"
	err := store.UpdateUser(UserPatch{FirstName: &name})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoActiveSession) || err == ErrNoActiveSession)
}

func TestSubscribe_NotifiedOnMutations(t *testing.T) {
	storage := localstore.NewMemoryStore()
	store := NewStore(storage, authOK(), "USD", nil)

	calls := 0
	unsubscribe := store.Subscribe(func() { calls++ })

	store.Initialize()
	require.NoError(t, store.Login(context.Background(), api.Credentials{Email: "a@b.com", Password: "x"}))
	store.Logout()
	require.Equal(t, 3, calls)

	unsubscribe()
	store.Logout()
	assert.Equal(t, 3, calls, "unsubscribed observer must not fire")
}

func TestNormalizeUser_DefaultsRoles(t *testing.T) {
	storage := localstore.NewMemoryStore()
	auth := &fakeAuth{resp: &api.AuthResponse{Token: "t", ID: 1, Username: "u", Currency: "GBP"}}
	store := NewStore(storage, auth, "USD", nil)
	store.Initialize()
	require.NoError(t, store.Login(context.Background(), api.Credentials{}))

	user := store.User()
	assert.NotNil(t, user.Roles)
	assert.Empty(t, user.Roles)
	assert.Equal(t, "GBP", user.Currency, "backend currency wins over the default")
	assert.False(t, core.IsAdmin(user))
}
