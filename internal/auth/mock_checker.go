package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned by the mock checker for anything but
// the demo account.
var ErrInvalidCredentials = errors.New("email address or password is incorrect")

const (
	demoEmail    = "demo@example.com"
	demoPassword = "password123"
	demoToken    = "mock-jwt-token-12345"
)

// MockChecker accepts the demo account only. It stands in for the real
// credential service until one exists, responding after a configurable
// delay so the loading state is observable.
type MockChecker struct {
	passwordHash []byte
	delay        time.Duration
}

func NewMockChecker(delay time.Duration) *MockChecker {
	// MinCost keeps startup fast; this hash protects nothing real
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return &MockChecker{passwordHash: hash, delay: delay}
}

func (c *MockChecker) Check(ctx context.Context, creds Credentials) (*Grant, error) {
	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if creds.Email != demoEmail {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(c.passwordHash, []byte(creds.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &Grant{
		Token: demoToken,
		User:  User{ID: "1", Email: demoEmail, Name: "Demo User"},
	}, nil
}
