package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/models"
)

// UserStore is the thread-safe registry of accounts, keyed by email.
// Emails are expected lowercased; the service layer normalizes them.
type UserStore struct {
	mu      sync.RWMutex
	byEmail map[string]*models.User
	byID    map[string]*models.User
}

// NewUserStore initializes an empty account registry.
func NewUserStore() *UserStore {
	return &UserStore{
		byEmail: make(map[string]*models.User),
		byID:    make(map[string]*models.User),
	}
}

// Create assigns the user an id and creation time and inserts it.
// It fails with ErrEmailTaken when the email already has an account.
func (s *UserStore) Create(u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[u.Email]; exists {
		return models.User{}, ErrEmailTaken
	}

	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()

	stored := u
	s.byEmail[stored.Email] = &stored
	s.byID[stored.ID] = &stored
	return u, nil
}

// GetByEmail returns the account registered under email.
func (s *UserStore) GetByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byEmail[email]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return *u, nil
}

// GetByID returns the account with the given id.
func (s *UserStore) GetByID(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return *u, nil
}
