package repository

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/yashrajoria/remarket/models"
)

// ErrEmailTaken is returned when creating a user with a duplicate email.
var ErrEmailTaken = errors.New("email already exists")

// UserRepository defines data access for the in-memory account store.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type InMemoryUserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]models.User
	byID    map[string]string
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		byEmail: make(map[string]models.User),
		byID:    make(map[string]string),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *InMemoryUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, ErrNotFound
	}
	out := user
	return &out, nil
}

func (r *InMemoryUserRepository) FindByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	email, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	user := r.byEmail[email]
	out := user
	return &out, nil
}

func (r *InMemoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := normalizeEmail(user.Email)
	if _, exists := r.byEmail[email]; exists {
		return ErrEmailTaken
	}
	r.byEmail[email] = *user
	r.byID[user.ID] = email
	return nil
}
