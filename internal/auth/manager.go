package auth

import (
	"context"
	"log"
	"sync"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/storage"
)

// StorageKey holds the persisted session record.
const StorageKey = "auth-state"

// fallbackLoginError covers collaborator failures without a message.
const fallbackLoginError = "login failed"

// CredentialChecker verifies credentials against an external collaborator.
// A nil Grant with a nil error is treated as a failed check.
type CredentialChecker interface {
	Check(ctx context.Context, creds Credentials) (*Grant, error)
}

// Manager owns the persisted auth session and the in-flight state of the
// current login call.
type Manager struct {
	cell    *storage.Cell[*State]
	checker CredentialChecker

	mu      sync.Mutex
	loading bool
}

func NewManager(ctx context.Context, store storage.Store, key string, checker CredentialChecker, logger *log.Logger) *Manager {
	// the default is a zero record, not an absent one: a client that has
	// never logged in reads Authenticated == false
	return &Manager{
		cell:    storage.NewCell(ctx, store, key, &State{}, logger),
		checker: checker,
	}
}

// Login delegates to the credential checker and, on success, replaces the
// whole session record. On failure the persisted session is untouched and
// the result carries the collaborator's message or a generic fallback.
func (m *Manager) Login(ctx context.Context, creds Credentials) Result {
	m.setLoading(true)
	defer m.setLoading(false)

	grant, err := m.checker.Check(ctx, creds)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = fallbackLoginError
		}
		return Result{Success: false, Error: msg}
	}
	if grant == nil {
		return Result{Success: false, Error: fallbackLoginError}
	}

	user := grant.User
	m.cell.Set(ctx, &State{User: &user, Token: grant.Token, Authenticated: true})
	return Result{Success: true}
}

// Logout deletes the session record outright.
func (m *Manager) Logout(ctx context.Context) {
	m.cell.Set(ctx, nil)
}

// State returns the current session record. ok is false after logout, when
// the record is absent; a never-logged-in session returns a zero record
// with ok true.
func (m *Manager) State() (State, bool) {
	s := m.cell.Get()
	if s == nil {
		return State{}, false
	}
	return *s, true
}

func (m *Manager) User() *User {
	s := m.cell.Get()
	if s == nil || s.User == nil {
		return nil
	}
	cp := *s.User
	return &cp
}

func (m *Manager) Token() string {
	s := m.cell.Get()
	if s == nil {
		return ""
	}
	return s.Token
}

func (m *Manager) IsAuthenticated() bool {
	s := m.cell.Get()
	return s != nil && s.Authenticated
}

// IsLoading is true while a login call is in flight. Re-entrant logins are
// not guarded here; the caller is expected to disable its trigger.
func (m *Manager) IsLoading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
}
