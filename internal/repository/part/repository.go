package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sm107-uiuc/sparemate-hub/internal/model"
)

// repository is the in-memory catalog. It is filled once by PartsBootstrap and
// only read afterwards; every read hands out copies.
type repository struct {
	mu    sync.RWMutex
	parts []*model.Part
	byID  map[string]*model.Part
}

func NewPartRepository() *repository {
	return &repository{byID: make(map[string]*model.Part)}
}

func (r *repository) PartByID(_ context.Context, id string) (*model.Part, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, model.ErrPartNotFound
	}

	return p.Clone(), nil
}

func (r *repository) Exists(_ context.Context, id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byID[id]
	return ok
}

// List returns the whole catalog in generation order.
func (r *repository) List(_ context.Context) ([]*model.Part, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Part, 0, len(r.parts))
	for _, p := range r.parts {
		out = append(out, p.Clone())
	}

	return out, nil
}

func (r *repository) CreateBatch(_ context.Context, parts []*model.Part) error {
	const op = "repository.CreateBatch"

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range parts {
		if p == nil {
			continue
		}
		if p.ID == "" {
			return fmt.Errorf("%s: part ID is empty", op)
		}
		if _, ok := r.byID[p.ID]; ok {
			return fmt.Errorf("%s: %w", op, errors.Join(model.ErrInvalidArgument, fmt.Errorf("duplicate part id %q", p.ID)))
		}

		cp := p.Clone()
		r.parts = append(r.parts, cp)
		r.byID[cp.ID] = cp
	}

	return nil
}
