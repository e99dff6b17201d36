package auth

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/storage"
)

func newTestManager(t *testing.T, checker CredentialChecker) (*Manager, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	logger := log.New(io.Discard, "", 0)
	return NewManager(context.Background(), store, StorageKey, checker, logger), store
}

func TestInitialState(t *testing.T) {
	m, _ := newTestManager(t, NewMockChecker(0))

	st, ok := m.State()
	require.True(t, ok, "a never-logged-in session has a zero record, not an absent one")
	assert.False(t, st.Authenticated)
	assert.Nil(t, st.User)
	assert.Empty(t, st.Token)
	assert.False(t, m.IsAuthenticated())
	assert.False(t, m.IsLoading())
}

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t, NewMockChecker(0))

	res := m.Login(ctx, Credentials{Email: "demo@example.com", Password: "password123"})
	require.True(t, res.Success)
	assert.Empty(t, res.Error)

	require.True(t, m.IsAuthenticated())
	user := m.User()
	require.NotNil(t, user)
	assert.Equal(t, "demo@example.com", user.Email)
	assert.Equal(t, "mock-jwt-token-12345", m.Token())
}

func TestLoginFailureLeavesSessionUntouched(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t, NewMockChecker(0))

	res := m.Login(ctx, Credentials{Email: "wrong@example.com", Password: "x"})
	require.False(t, res.Success)
	assert.Equal(t, ErrInvalidCredentials.Error(), res.Error)
	assert.False(t, m.IsAuthenticated())

	// a failed login after a successful one keeps the existing session
	res = m.Login(ctx, Credentials{Email: "demo@example.com", Password: "password123"})
	require.True(t, res.Success)
	res = m.Login(ctx, Credentials{Email: "demo@example.com", Password: "nope"})
	require.False(t, res.Success)
	assert.True(t, m.IsAuthenticated(), "failed login must not clear the session")
}

type erroringChecker struct {
	err error
}

func (c *erroringChecker) Check(ctx context.Context, creds Credentials) (*Grant, error) {
	return nil, c.err
}

func TestLoginNetworkErrorIsAFailureResult(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t, &erroringChecker{err: errors.New("connection refused")})

	res := m.Login(ctx, Credentials{Email: "demo@example.com", Password: "password123"})
	require.False(t, res.Success)
	assert.Equal(t, "connection refused", res.Error)
	assert.False(t, m.IsAuthenticated())
}

type nilGrantChecker struct{}

func (nilGrantChecker) Check(ctx context.Context, creds Credentials) (*Grant, error) {
	return nil, nil
}

func TestLoginNilGrantUsesFallbackMessage(t *testing.T) {
	m, _ := newTestManager(t, nilGrantChecker{})

	res := m.Login(context.Background(), Credentials{Email: "demo@example.com", Password: "password123"})
	require.False(t, res.Success)
	assert.Equal(t, "login failed", res.Error)
}

func TestLogoutDeletesRecord(t *testing.T) {
	ctx := context.Background()
	m, store := newTestManager(t, NewMockChecker(0))

	res := m.Login(ctx, Credentials{Email: "demo@example.com", Password: "password123"})
	require.True(t, res.Success)

	m.Logout(ctx)

	_, ok := m.State()
	assert.False(t, ok, "logout deletes the whole record")
	assert.Nil(t, m.User())
	assert.Empty(t, m.Token())
	assert.False(t, m.IsAuthenticated())

	_, err := store.Get(ctx, StorageKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

type blockingChecker struct {
	release chan struct{}
}

func (c *blockingChecker) Check(ctx context.Context, creds Credentials) (*Grant, error) {
	<-c.release
	return &Grant{Token: "t", User: User{ID: "1"}}, nil
}

func TestIsLoadingDuringLogin(t *testing.T) {
	checker := &blockingChecker{release: make(chan struct{})}
	m, _ := newTestManager(t, checker)

	done := make(chan Result, 1)
	go func() {
		done <- m.Login(context.Background(), Credentials{Email: "demo@example.com", Password: "password123"})
	}()

	// wait until the login goroutine reaches the collaborator
	deadline := time.Now().Add(time.Second)
	for !m.IsLoading() {
		if time.Now().After(deadline) {
			t.Fatal("login never entered loading state")
		}
		time.Sleep(time.Millisecond)
	}

	close(checker.release)
	res := <-done
	require.True(t, res.Success)
	assert.False(t, m.IsLoading())
}

func TestSessionSurvivesReload(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	logger := log.New(io.Discard, "", 0)
	checker := NewMockChecker(0)

	m := NewManager(ctx, store, StorageKey, checker, logger)
	res := m.Login(ctx, Credentials{Email: "demo@example.com", Password: "password123"})
	require.True(t, res.Success)

	reloaded := NewManager(ctx, store, StorageKey, checker, logger)
	assert.True(t, reloaded.IsAuthenticated())
	assert.Equal(t, "mock-jwt-token-12345", reloaded.Token())
}
