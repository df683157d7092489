package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/sm107-uiuc/sparemate-hub/internal/model"
)

// memoryRepository indexes users by id, API key and email so every lookup is
// a single map access.
type memoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]UserEntity
	byKey   map[string]string
	byEmail map[string]string
}

func NewMemoryRepository() *memoryRepository {
	return &memoryRepository{
		byID:    make(map[string]UserEntity),
		byKey:   make(map[string]string),
		byEmail: make(map[string]string),
	}
}

func (r *memoryRepository) Create(_ context.Context, u *model.User) error {
	const op = "repository.memory.Create"

	e := UserFromModel(u)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[e.ID]; ok {
		return fmt.Errorf("%s: id %s: %w", op, e.ID, model.ErrUserExists)
	}
	if _, ok := r.byEmail[e.Email]; ok {
		return fmt.Errorf("%s: email %s: %w", op, e.Email, model.ErrUserExists)
	}

	r.byID[e.ID] = e
	r.byKey[e.APIKey] = e.ID
	r.byEmail[e.Email] = e.ID

	return nil
}

func (r *memoryRepository) UserByAPIKey(_ context.Context, apiKey string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byKey[apiKey]
	if !ok {
		return nil, model.ErrUserNotFound
	}

	return UserToModel(r.byID[id]), nil
}

func (r *memoryRepository) UserByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, model.ErrUserNotFound
	}

	return UserToModel(r.byID[id]), nil
}

func (r *memoryRepository) Delete(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[userID]
	if !ok {
		return nil
	}

	delete(r.byID, userID)
	delete(r.byKey, e.APIKey)
	delete(r.byEmail, e.Email)

	return nil
}
