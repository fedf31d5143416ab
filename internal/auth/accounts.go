package auth

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when no account matches the lookup.
var ErrAccountNotFound = errors.New("account not found")

// ErrEmailTaken is returned when registering an email that already exists.
var ErrEmailTaken = errors.New("email already registered")

// Account is a registered shopper. Accounts live in process memory; they are
// as volatile as everything else here.
type Account struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// Accounts is an in-memory account store keyed by normalized email.
type Accounts struct {
	mu       sync.RWMutex
	byEmail  map[string]*Account
	byID     map[uuid.UUID]*Account
	now      func() time.Time
}

// NewAccounts returns an empty account store.
func NewAccounts() *Accounts {
	return &Accounts{
		byEmail: make(map[string]*Account),
		byID:    make(map[uuid.UUID]*Account),
		now:     time.Now,
	}
}

// NormalizeEmail lowercases and trims an email for use as a lookup key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create registers a new account. The email must be unused.
func (a *Accounts) Create(name, email, passwordHash string) (*Account, error) {
	key := NormalizeEmail(email)

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.byEmail[key]; exists {
		return nil, ErrEmailTaken
	}
	account := &Account{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(name),
		Email:        key,
		PasswordHash: passwordHash,
		CreatedAt:    a.now().UTC(),
	}
	a.byEmail[key] = account
	a.byID[account.ID] = account
	return account, nil
}

// FindByEmail looks an account up by email.
func (a *Accounts) FindByEmail(email string) (*Account, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	account, ok := a.byEmail[NormalizeEmail(email)]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// FindByID looks an account up by id.
func (a *Accounts) FindByID(id uuid.UUID) (*Account, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	account, ok := a.byID[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// RecordLogin stamps the account's last login time.
func (a *Accounts) RecordLogin(id uuid.UUID, at time.Time) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	account, ok := a.byID[id]
	if !ok {
		return ErrAccountNotFound
	}
	account.LastLoginAt = &at
	return nil
}
