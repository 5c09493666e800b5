package accounts

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type Storage interface {
	// Insert stores a, failing with ErrAccountExists when the email is taken.
	Insert(ctx context.Context, a Account) error
	ByEmail(ctx context.Context, email string) (Account, error)
	ByID(ctx context.Context, id uuid.UUID) (Account, error)
}

// MemoryStorage is a process-local Storage. Accounts are lost on restart.
type MemoryStorage struct {
	mu      sync.RWMutex
	byEmail map[string]Account
	byID    map[uuid.UUID]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		byEmail: make(map[string]Account),
		byID:    make(map[uuid.UUID]string),
	}
}

func (m *MemoryStorage) Insert(_ context.Context, a Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byEmail[a.Email]; ok {
		return ErrAccountExists
	}
	m.byEmail[a.Email] = a
	m.byID[a.ID] = a.Email
	return nil
}

func (m *MemoryStorage) ByEmail(_ context.Context, email string) (Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.byEmail[email]
	if !ok {
		return Account{}, ErrAccountNotFound
	}
	return a, nil
}

func (m *MemoryStorage) ByID(_ context.Context, id uuid.UUID) (Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	email, ok := m.byID[id]
	if !ok {
		return Account{}, ErrAccountNotFound
	}
	return m.byEmail[email], nil
}
