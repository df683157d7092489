package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/sm107-uiuc/sparemate-hub/internal/model"
	"github.com/sm107-uiuc/sparemate-hub/platform/logger"
)

// memoryRepository keeps each cart as encoded text under its storage key,
// the same layout the redis driver uses.
type memoryRepository struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryRepository() *memoryRepository {
	return &memoryRepository{data: make(map[string][]byte)}
}

func (r *memoryRepository) Lines(ctx context.Context, userID string) ([]model.CartLine, error) {
	const op = "repository.memory.Lines"

	r.mu.RLock()
	raw, ok := r.data[Key(userID)]
	r.mu.RUnlock()
	if !ok {
		return []model.CartLine{}, nil
	}

	lines, migrated, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if migrated {
		logger.Warn(ctx, "cart data migrated on read", logger.String("user_id", userID))
	}

	return lines, nil
}

func (r *memoryRepository) Save(_ context.Context, userID string, lines []model.CartLine) error {
	const op = "repository.memory.Save"

	raw, err := Encode(lines)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	r.mu.Lock()
	r.data[Key(userID)] = raw
	r.mu.Unlock()

	return nil
}

func (r *memoryRepository) Delete(_ context.Context, userID string) error {
	r.mu.Lock()
	delete(r.data, Key(userID))
	r.mu.Unlock()

	return nil
}
